package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spektr-org/momwatch/engine"
)

// ============================================================================
// CHART RENDERER - ChartConfig → PNG
// ============================================================================
//   donut   → chart.DonutChart, one slice per segment
//   scatter → chart.Chart, one dot-only ContinuousSeries per target value
// ============================================================================

// Default image size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 500
)

// ErrEmptyChart is returned for a config with nothing to plot.
var ErrEmptyChart = errors.New("chart has no data")

// Chart draws cfg as a PNG into w. Non-positive sizes use the defaults.
func Chart(w io.Writer, cfg *engine.ChartConfig, width, height int) error {
	if cfg == nil || cfg.PointCount() == 0 {
		return ErrEmptyChart
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	switch cfg.ChartType {
	case engine.ChartDonut:
		return renderDonut(w, cfg, width, height)
	case engine.ChartScatter:
		return renderScatter(w, cfg, width, height)
	default:
		return errors.Errorf("unsupported chart type %q", cfg.ChartType)
	}
}

// ── Donut ────────────────────────────────────────────────────────────────────

func renderDonut(w io.Writer, cfg *engine.ChartConfig, width, height int) error {
	points := cfg.Series[0].Data
	total := 0.0
	for _, p := range points {
		total += p.Value
	}
	if total <= 0 {
		return ErrEmptyChart
	}

	values := make([]chart.Value, 0, len(points))
	for i, p := range points {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", p.Label, 100*p.Value/total),
			Value: p.Value,
			Style: chart.Style{
				FillColor:   hexColor(colorAt(cfg.Colors, i)),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}

	donut := chart.DonutChart{
		Title:  cfg.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
	return errors.Wrap(donut.Render(chart.PNG, w), "failed to render donut chart")
}

// ── Scatter ──────────────────────────────────────────────────────────────────

func renderScatter(w io.Writer, cfg *engine.ChartConfig, width, height int) error {
	var series []chart.Series
	var xs, ys []float64

	for i, s := range cfg.Series {
		if len(s.Points) == 0 {
			continue
		}
		sx := make([]float64, len(s.Points))
		sy := make([]float64, len(s.Points))
		for j, p := range s.Points {
			sx[j], sy[j] = p.X, p.Y
		}
		xs = append(xs, sx...)
		ys = append(ys, sy...)

		color := s.Color
		if color == "" {
			color = colorAt(cfg.Colors, i)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: sx,
			YValues: sy,
			Style:   pointStyle(hexColor(color)),
		})
	}
	if len(series) == 0 {
		return ErrEmptyChart
	}

	ch := chart.Chart{
		Title:      cfg.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Name: cfg.XAxis, Range: paddedRange(xs)},
		YAxis:      chart.YAxis{Name: cfg.YAxis, Range: paddedRange(ys)},
		Series:     series,
	}
	if cfg.ShowGrid {
		grid := chart.Style{StrokeColor: drawing.ColorFromHex("e5e7eb"), StrokeWidth: 1}
		ch.XAxis.GridMajorStyle = grid
		ch.YAxis.GridMajorStyle = grid
	}
	if cfg.ShowLegend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return errors.Wrap(ch.Render(chart.PNG, w), "failed to render scatter chart")
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// paddedRange spans values with a 5% margin. A single distinct value gets
// a unit margin so the range never collapses to zero width.
func paddedRange(values []float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func colorAt(colors []string, i int) string {
	if len(colors) == 0 {
		return "#4F46E5"
	}
	return colors[i%len(colors)]
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
