package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/spektr-org/momwatch/dashboard"
	"github.com/spektr-org/momwatch/engine"
)

// ============================================================================
// REPORT - One interaction cycle as terminal output
// ============================================================================
// Formats:
//   text    human-readable sections with tablewriter grids (default)
//   json    the Page as compact JSON
//   pretty  the Page as indented JSON
//   csv     the raw preview grid, ready for a spreadsheet
// ============================================================================

// Format selects the report encoding.
type Format string

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatPretty Format = "pretty"
	FormatCSV    Format = "csv"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatPretty), string(FormatCSV)}
}

// ParseFormat validates a format name. Empty selects text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range Formats() {
		if s == f {
			return Format(s), nil
		}
	}
	return "", errors.Errorf("unknown format %q (want one of %s)", s, strings.Join(Formats(), ", "))
}

// Title heads every text report and the web page.
const Title = "Maternal Health Analytics & Prediction"

// Report writes page to w in the requested format.
func Report(w io.Writer, page *dashboard.Page, format Format) error {
	switch format {
	case FormatJSON, FormatPretty:
		return writeJSON(w, page, format == FormatPretty)
	case FormatCSV:
		return writeCSV(w, page)
	case FormatText, "":
		return writeText(w, page)
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

// ============================================================================
// TEXT
// ============================================================================

func writeText(w io.Writer, page *dashboard.Page) error {
	fmt.Fprintf(w, "%s\n\n", Title)
	fmt.Fprintf(w, "Dataset: %s\n", page.Dataset.FileName())

	if page.Failed() {
		fmt.Fprintf(w, "%s\n", page.Error)
		return nil
	}
	fmt.Fprintf(w, "%s\n", page.Loaded)

	res := page.Result
	if res == nil {
		return nil
	}

	section(w, "Key Metrics")
	metrics := newGrid(w, []string{"Metric", "Value"})
	for _, m := range res.Metrics {
		metrics.Append([]string{m.Label, m.Value})
	}
	metrics.Render()

	if res.ProportionChart != nil {
		section(w, res.ProportionChart.Title)
		writeProportion(w, res.ProportionChart)
	}

	if rc := res.RelationshipChart; rc != nil {
		section(w, rc.Title)
		groups := newGrid(w, []string{rc.ColorBy, "Points"})
		for _, s := range rc.Series {
			groups.Append([]string{s.Name, strconv.Itoa(len(s.Points))})
		}
		groups.Render()
	}

	section(w, "Manual Input Prediction")
	if p := res.Prediction; p != nil {
		fmt.Fprintf(w, "value_1=%d value_2=%d value_3=%d\n", p.Inputs.Value1, p.Inputs.Value2, p.Inputs.Value3)
		fmt.Fprintf(w, "%s\n", p.Message)
	} else {
		fmt.Fprintln(w, "Not triggered.")
	}

	if res.Preview != nil {
		section(w, res.Preview.Title)
		preview := newGrid(w, res.Preview.Headers())
		align := make([]int, len(res.Preview.Columns))
		for i, c := range res.Preview.Columns {
			align[i] = tablewriter.ALIGN_LEFT
			if c.Align == "right" {
				align[i] = tablewriter.ALIGN_RIGHT
			}
		}
		preview.SetColumnAlignment(align)
		preview.AppendBulk(res.Preview.Rows)
		preview.Render()
	}
	return nil
}

func writeProportion(w io.Writer, cfg *engine.ChartConfig) {
	points := cfg.Series[0].Data
	total := 0.0
	for _, p := range points {
		total += p.Value
	}
	grid := newGrid(w, []string{cfg.ColorBy, "Count", "Share"})
	for _, p := range points {
		grid.Append([]string{
			p.Label,
			strconv.FormatFloat(p.Value, 'f', -1, 64),
			engine.FormatFixed1(100*p.Value/total) + "%",
		})
	}
	grid.Render()
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
}

func newGrid(w io.Writer, headers []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetHeader(headers)
	return t
}

// ============================================================================
// JSON / CSV
// ============================================================================

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return errors.Wrap(err, "failed to marshal report")
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func writeCSV(w io.Writer, page *dashboard.Page) error {
	cw := csv.NewWriter(w)
	switch {
	case page.Failed():
		cw.Write([]string{"Error", page.Error})
	case page.Result == nil || page.Result.Preview == nil:
		cw.Write([]string{"Result", "No data"})
	default:
		cw.Write(page.Result.Preview.Headers())
		cw.WriteAll(page.Result.Preview.Rows)
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to write CSV report")
}
