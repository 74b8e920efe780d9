package server

// dashboardHTML is the single page of the web dashboard. It is a plain GET
// form: changing the dataset or pressing "Predict Now" reruns the cycle.
const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; color: #111827; background: #f9fafb; }
  header { padding: 1.5rem 2rem; background: #ffffff; border-bottom: 1px solid #e5e7eb; }
  main { display: flex; gap: 2rem; padding: 1.5rem 2rem; }
  aside { min-width: 18rem; }
  section { flex: 1; }
  label { display: block; margin: .75rem 0 .25rem; font-weight: 600; }
  select, input[type=number] { width: 100%; padding: .4rem; }
  button { margin-top: 1rem; padding: .5rem 1rem; background: #4F46E5; color: #ffffff; border: 0; border-radius: 4px; cursor: pointer; }
  .banner { padding: .75rem 1rem; border-radius: 4px; margin-bottom: 1rem; }
  .success { background: #d1fae5; color: #065f46; }
  .error { background: #fee2e2; color: #991b1b; }
  .metrics { display: flex; gap: 1rem; margin-bottom: 1.5rem; }
  .metric { flex: 1; background: #ffffff; border: 1px solid #e5e7eb; border-radius: 6px; padding: 1rem; }
  .metric .label { font-size: .85rem; color: #6b7280; }
  .metric .value { font-size: 1.75rem; font-weight: 700; }
  .charts { display: flex; flex-wrap: wrap; gap: 1rem; }
  .charts img { max-width: 100%; background: #ffffff; border: 1px solid #e5e7eb; }
  table { border-collapse: collapse; width: 100%; background: #ffffff; font-size: .85rem; }
  th, td { border: 1px solid #e5e7eb; padding: .3rem .5rem; }
  td.number { text-align: right; }
  .balloons span { position: fixed; bottom: -4rem; font-size: 2.5rem; animation: rise 4s ease-in forwards; }
  @keyframes rise { to { transform: translateY(-120vh); opacity: 0; } }
</style>
</head>
<body>
<header><h1>{{.Title}}</h1></header>
<main>
<aside>
  <form method="get" action="/">
    <label for="dataset">Select Dataset</label>
    <select id="dataset" name="dataset" onchange="this.form.submit()">
      {{range .Choices}}<option value="{{.ID}}"{{if .Selected}} selected{{end}}>{{.ID}}</option>{{end}}
    </select>
    {{if .Fields}}
    <h2>Manual Input Prediction</h2>
    {{$in := .Inputs}}
    {{range $i, $f := .Fields}}
    <label for="{{$f.Key}}">{{$f.Label}}</label>
    <input type="number" id="{{$f.Key}}" name="{{$f.Key}}" min="{{$f.Min}}" max="{{$f.Max}}" step="1"
      value="{{if eq $i 0}}{{$in.Value1}}{{else if eq $i 1}}{{$in.Value2}}{{else}}{{$in.Value3}}{{end}}">
    {{end}}
    <button type="submit" name="predict" value="1">Predict Now</button>
    {{end}}
  </form>
</aside>
<section>
  {{if .Error}}
  <div class="banner error">{{.Error}}</div>
  {{else}}
  <div class="banner success">{{.Loaded}}</div>
  {{with .Result}}
  {{with .Prediction}}
  <div class="banner {{.Style}}">{{.Message}}</div>
  {{if .Celebrate}}<div class="balloons"><span style="left:10%">🎈</span><span style="left:30%;animation-delay:.4s">🎈</span><span style="left:55%;animation-delay:.2s">🎈</span><span style="left:80%;animation-delay:.6s">🎈</span></div>{{end}}
  {{end}}
  <h2>Key Metrics</h2>
  <div class="metrics">
    {{range .Metrics}}<div class="metric"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>{{end}}
  </div>
  {{end}}
  <h2>Visual Analysis</h2>
  <div class="charts">
    {{if .ProportionURL}}<img src="{{.ProportionURL}}" alt="proportion chart">{{end}}
    {{if .RelationshipURL}}<img src="{{.RelationshipURL}}" alt="relationship chart">{{end}}
  </div>
  {{with .Result}}{{with .Preview}}
  <h2>{{.Title}}</h2>
  <table>
    <thead><tr>{{range .Columns}}<th>{{.Label}}</th>{{end}}</tr></thead>
    <tbody>
      {{$cols := .Columns}}
      {{range .Rows}}<tr>{{range $i, $cell := .}}<td class="{{(index $cols $i).Type}}">{{$cell}}</td>{{end}}</tr>{{end}}
    </tbody>
  </table>
  {{end}}{{end}}
  {{end}}
</section>
</main>
</body>
</html>
`
