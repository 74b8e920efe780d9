package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProportionChartSegments(t *testing.T) {
	table := mustTable(t,
		[]string{"x", "RiskLevel"},
		[]string{"1", "low risk"},
		[]string{"2", "high risk"},
		[]string{"3", "mid risk"},
		[]string{"4", "high risk"},
		[]string{"5", ""},
	)
	chart := BuildProportionChart(table, ColumnRiskLevel)
	require.NotNil(t, chart)

	assert.Equal(t, ChartDonut, chart.ChartType)
	assert.Equal(t, "Analysis of RiskLevel", chart.Title)
	require.Len(t, chart.Series, 1)

	// Sorted by frequency, ties keep first appearance; missing dropped.
	assert.Equal(t, []ChartPoint{
		{Label: "high risk", Value: 2},
		{Label: "low risk", Value: 1},
		{Label: "mid risk", Value: 1},
	}, chart.Series[0].Data)
	assert.Len(t, chart.Colors, 3)
	assert.Equal(t, 3, chart.PointCount())
}

func TestProportionChartNilWithoutValues(t *testing.T) {
	table := mustTable(t, []string{"a"}, []string{""})
	assert.Nil(t, BuildProportionChart(table, "a"))
	assert.Nil(t, BuildProportionChart(table, "missing"))
}

func TestRelationshipChartUsesFirstTwoNumericColumns(t *testing.T) {
	table := mustTable(t,
		[]string{"name", "Age", "SystolicBP", "BS", "RiskLevel"},
		[]string{"a", "25", "130", "15", "high risk"},
		[]string{"b", "35", "140", "13", "low risk"},
		[]string{"c", "29", "", "8", "high risk"},
		[]string{"d", "31", "110", "6", ""},
	)
	chart := BuildRelationshipChart(table, ColumnRiskLevel)
	require.NotNil(t, chart)

	assert.Equal(t, ChartScatter, chart.ChartType)
	assert.Equal(t, "Age", chart.XAxis)
	assert.Equal(t, "SystolicBP", chart.YAxis)
	assert.Equal(t, ColumnRiskLevel, chart.ColorBy)

	require.Len(t, chart.Series, 2)
	assert.Equal(t, "high risk", chart.Series[0].Name)
	assert.Equal(t, []ScatterPoint{{X: 25, Y: 130}}, chart.Series[0].Points)
	assert.Equal(t, "low risk", chart.Series[1].Name)
	assert.Equal(t, []ScatterPoint{{X: 35, Y: 140}}, chart.Series[1].Points)
	assert.NotEqual(t, chart.Series[0].Color, chart.Series[1].Color)
}

func TestRelationshipChartSkipsNonFinitePoints(t *testing.T) {
	table := mustTable(t,
		[]string{"a", "b", "c"},
		[]string{"1", "2", "x"},
		[]string{"inf", "3", "y"},
		[]string{"4", "-Inf", "x"},
	)
	chart := BuildRelationshipChart(table, "c")
	require.NotNil(t, chart)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, "x", chart.Series[0].Name)
	assert.Equal(t, []ScatterPoint{{X: 1, Y: 2}}, chart.Series[0].Points)
}

func TestRelationshipChartOmittedWithOneNumericColumn(t *testing.T) {
	table := mustTable(t,
		[]string{"score", "RiskLevel"},
		[]string{"1", "high risk"},
		[]string{"2", "low risk"},
	)
	assert.Nil(t, BuildRelationshipChart(table, ColumnRiskLevel))

	// The proportion chart is still produced.
	require.NotNil(t, BuildProportionChart(table, ColumnRiskLevel))
}

func TestRelationshipChartNumericTargetColorsByValue(t *testing.T) {
	table := fetalTable(t, "1.0", "2.0", "1.0")
	chart := BuildRelationshipChart(table, ColumnFetalHealth)
	require.NotNil(t, chart)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, "1.0", chart.Series[0].Name)
	assert.Len(t, chart.Series[0].Points, 2)
}
