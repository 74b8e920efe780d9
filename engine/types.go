package engine

// ============================================================================
// ENGINE TYPES - Render-ready dashboard output
// ============================================================================
// Everything here is plain data: the server turns it into HTML/JSON, the
// render package into PNG and terminal text.
//
// Dependency: engine never reads files and never calls out.
// ============================================================================

// ============================================================================
// RESULT - One interaction cycle's output for a loaded table
// ============================================================================

// Result is the engine's render-ready output.
type Result struct {
	Success bool   `json:"success"`
	Dataset string `json:"dataset"`
	Records int    `json:"records"`

	Metrics      []Metric `json:"metrics"`
	TargetColumn string   `json:"targetColumn"`

	ProportionChart   *ChartConfig `json:"proportionChart"`
	RelationshipChart *ChartConfig `json:"relationshipChart,omitempty"` // nil when < 2 numeric columns

	Preview *TableData `json:"preview"`

	// Only set when the predictor was triggered this cycle.
	Prediction *Prediction `json:"prediction,omitempty"`
}

// ============================================================================
// METRIC TYPES
// ============================================================================

// Metric is one summary card.
type Metric struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value string  `json:"value"`
	Raw   float64 `json:"raw"`
}

// ============================================================================
// GROUP - Intermediate computation result
// ============================================================================

// Group is the frequency of one distinct value.
type Group struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
	first int    // first row index, for stable ordering
}

// ============================================================================
// CHART TYPES
// ============================================================================

// Chart kinds produced by the builders.
const (
	ChartDonut   = "donut"
	ChartScatter = "scatter"
)

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	ColorBy    string        `json:"colorBy,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
// Donut series use Data; scatter series use Points.
type ChartSeries struct {
	Name   string         `json:"name"`
	Data   []ChartPoint   `json:"data,omitempty"`
	Points []ScatterPoint `json:"points,omitempty"`
	Color  string         `json:"color,omitempty"`
}

// ChartPoint represents a single labelled value.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ScatterPoint is one (x, y) pair.
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointCount is the number of plotted points across all series.
func (c *ChartConfig) PointCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, s := range c.Series {
		n += len(s.Data) + len(s.Points)
	}
	return n
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a grid.
type TableData struct {
	Title   string       `json:"title"`
	Columns []GridColumn `json:"columns"`
	Rows    [][]string   `json:"rows"`
}

// GridColumn defines a grid column.
type GridColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "right"
}

// Headers returns column labels in order.
func (t *TableData) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Label
	}
	return out
}
