package render

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/momwatch/dashboard"
	"github.com/spektr-org/momwatch/dataset"
	"github.com/spektr-org/momwatch/engine"
	"github.com/spektr-org/momwatch/helpers"
	"github.com/spektr-org/momwatch/loader"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

type csvSource map[dataset.ID]string

func (s csvSource) Load(id dataset.ID) (*engine.Table, error) {
	data, ok := s[id]
	if !ok {
		return nil, &loader.LoadError{File: id.FileName(), Err: os.ErrNotExist}
	}
	table, _, err := helpers.ParseCSV(id.FileName(), []byte(data))
	return table, err
}

const maternal = `Age,SystolicBP,DiastolicBP,BS,BodyTemp,HeartRate,RiskLevel
25,130,80,15,98,86,high risk
35,140,90,13,98,70,high risk
29,90,70,8,100,80,low risk
30,140,85,7,98,70,mid risk
`

func maternalPage(t *testing.T, trigger bool) *dashboard.Page {
	page := dashboard.New(csvSource{dataset.Maternal: maternal}).Run(dashboard.Request{
		Dataset: dataset.Maternal,
		Inputs:  engine.PredictorInputs{Value1: 150, Value2: 7, Value3: 98},
		Trigger: trigger,
	})
	require.NotNil(t, page.Result)
	return page
}

// ── Charts ───────────────────────────────────────────────────────────────────

func renderPNG(cfg *engine.ChartConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := Chart(&buf, cfg, 0, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func TestChartRendersDonutrenderPNG(t *testing.T) {
	page := maternalPage(t, false)
	out, err := renderPNG(page.Result.ProportionChart)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, pngMagic))

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultHeight, img.Bounds().Dy())
}

func TestChartRendersScatterrenderPNG(t *testing.T) {
	page := maternalPage(t, false)
	var buf bytes.Buffer
	require.NoError(t, Chart(&buf, page.Result.RelationshipChart, 640, 480))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestChartSinglePointScatter(t *testing.T) {
	cfg := &engine.ChartConfig{
		ChartType: engine.ChartScatter,
		Series:    []engine.ChartSeries{{Name: "1", Points: []engine.ScatterPoint{{X: 3, Y: 3}}}},
	}
	out, err := renderPNG(cfg)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, pngMagic))
}

func TestChartErrors(t *testing.T) {
	_, err := renderPNG(nil)
	assert.Equal(t, ErrEmptyChart, err)

	_, err = renderPNG(&engine.ChartConfig{ChartType: engine.ChartDonut, Series: []engine.ChartSeries{{}}})
	assert.Equal(t, ErrEmptyChart, err)

	_, err = renderPNG(&engine.ChartConfig{
		ChartType: "bar",
		Series:    []engine.ChartSeries{{Data: []engine.ChartPoint{{Label: "a", Value: 1}}}},
	})
	assert.Error(t, err)
}

// ── Reports ──────────────────────────────────────────────────────────────────

func TestTextReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, maternalPage(t, true), FormatText))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, Title))
	assert.Contains(t, out, "Successfully loaded: Maternal Health Risk Data Set.csv")
	assert.Contains(t, out, "Total Records")
	assert.Contains(t, out, "29.8")
	assert.Contains(t, out, "High Risk Count")
	assert.Contains(t, out, "Analysis of RiskLevel")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "SystolicBP vs Age")
	assert.Contains(t, out, "AI Result: HIGH RISK")
	assert.Contains(t, out, "Raw Data Preview")
	assert.Contains(t, out, "DiastolicBP")
}

func TestTextReportIdlePredictor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, maternalPage(t, false), FormatText))
	assert.Contains(t, buf.String(), "Not triggered.")
	assert.NotContains(t, buf.String(), "AI Result")
}

func TestTextReportLoadFailure(t *testing.T) {
	page := dashboard.New(csvSource{}).Run(dashboard.Request{Dataset: dataset.Fetal})
	require.True(t, page.Failed())

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, page, FormatText))
	out := buf.String()
	assert.Contains(t, out, "Error loading fetal_health.csv")
	assert.NotContains(t, out, "Key Metrics")
	assert.NotContains(t, out, "Raw Data Preview")
}

func TestJSONAndCSVReports(t *testing.T) {
	page := maternalPage(t, false)

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, page, FormatJSON))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, string(dataset.Maternal), decoded["dataset"])

	buf.Reset()
	require.NoError(t, Report(&buf, page, FormatCSV))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Age,SystolicBP,DiastolicBP,BS,BodyTemp,HeartRate,RiskLevel", lines[0])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("pretty")
	require.NoError(t, err)
	assert.Equal(t, FormatPretty, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestSchemaReport(t *testing.T) {
	_, sch, err := helpers.ParseCSV("m.csv", []byte(maternal))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Schema(&buf, sch, FormatText))
	out := buf.String()
	assert.Contains(t, out, "m.csv: 4 rows, 7 columns")
	assert.Contains(t, out, "Numeric: Age, SystolicBP, DiastolicBP, BS, BodyTemp, HeartRate\n")
	assert.Contains(t, out, "RiskLevel")
	assert.Contains(t, out, "numeric")
	assert.Contains(t, out, "high risk | low risk | mid risk")

	buf.Reset()
	require.NoError(t, Schema(&buf, sch, FormatCSV))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 8)
	assert.Equal(t, "Column,Kind,Missing,Unique,Cardinality,Samples", lines[0])
}
