package engine

import (
	"fmt"
	"math"
)

// ============================================================================
// CHART BUILDER - Produces ChartConfig from a View + target column
// ============================================================================
// Two charts per cycle:
//   proportion   - donut of the target column's value frequencies
//   relationship - scatter of the first two numeric columns, one series
//                  per target value (omitted with < 2 numeric columns)
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildProportionChart sizes one segment per distinct target value.
// Returns nil when the target column has no values at all.
func BuildProportionChart(view View, target string) *ChartConfig {
	groups := Frequencies(view, target)
	if len(groups) == 0 {
		return nil
	}
	SortGroups(groups)

	points := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, ChartPoint{
			Label: g.Key,
			Value: float64(g.Count),
		})
	}

	return &ChartConfig{
		ChartType:  ChartDonut,
		Title:      fmt.Sprintf("Analysis of %s", target),
		ColorBy:    target,
		Series:     []ChartSeries{{Name: target, Data: points}},
		Colors:     assignColors(len(points)),
		ShowLegend: true,
		ShowGrid:   false,
	}
}

// BuildRelationshipChart plots the first numeric column against the second,
// colored by target. Returns nil with fewer than two numeric columns.
func BuildRelationshipChart(view View, target string) *ChartConfig {
	numeric := NumericColumns(view)
	if len(numeric) < 2 {
		return nil
	}
	x, y := numeric[0], numeric[1]

	config := &ChartConfig{
		ChartType:  ChartScatter,
		Title:      fmt.Sprintf("%s vs %s", y, x),
		XAxis:      x,
		YAxis:      y,
		ColorBy:    target,
		ShowLegend: true,
		ShowGrid:   true,
	}
	config.Series = buildScatterSeries(view, x, y, target)
	for i := range config.Series {
		config.Series[i].Color = defaultColors[i%len(defaultColors)]
	}
	config.Colors = assignColors(len(config.Series))
	return config
}

// ============================================================================
// SERIES BUILDERS
// ============================================================================

// buildScatterSeries groups points by target value in first-appearance order.
// Rows missing x, y or the target value are not plotted, nor are
// non-finite coordinates.
func buildScatterSeries(view View, x, y, target string) []ChartSeries {
	pos := make(map[string]int)
	var series []ChartSeries

	for i := 0; i < view.Len(); i++ {
		cx, cy := view.Cell(i, x), view.Cell(i, y)
		if !cx.IsNum || !cy.IsNum || !finite(cx.Num) || !finite(cy.Num) {
			continue
		}
		ct := view.Cell(i, target)
		if ct.Missing {
			continue
		}
		p, ok := pos[ct.Raw]
		if !ok {
			p = len(series)
			pos[ct.Raw] = p
			series = append(series, ChartSeries{Name: ct.Raw})
		}
		series[p].Points = append(series[p].Points, ScatterPoint{X: cx.Num, Y: cy.Num})
	}
	return series
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
