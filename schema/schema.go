package schema

// ============================================================================
// SCHEMA - Describes the shape of a loaded dataset
// ============================================================================
// Schema-on-read: nothing is declared up front. Columns are discovered from
// the CSV header row and typed by inspecting every cell (see discover.go).
// The loader uses Kind to decide which columns carry numbers; the API and
// the `discover` command expose the whole Config.
// ============================================================================

// Kind is the inferred type of a column.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
)

// Config describes the complete shape of a dataset.
type Config struct {
	Name     string       `json:"name"`
	RowCount int          `json:"rowCount"`
	Columns  []ColumnMeta `json:"columns"`

	// Discovery metadata
	DiscoveredFrom string `json:"discoveredFrom,omitempty"`
	DiscoveredAt   string `json:"discoveredAt,omitempty"`
}

// ColumnMeta describes one column in header order.
type ColumnMeta struct {
	Name            string   `json:"name"`
	Index           int      `json:"index"`
	Kind            Kind     `json:"kind"`
	MissingCount    int      `json:"missingCount"`
	UniqueCount     int      `json:"uniqueCount"`
	SampleValues    []string `json:"sampleValues"`
	HasDecimals     bool     `json:"hasDecimals,omitempty"`
	CardinalityHint string   `json:"cardinalityHint,omitempty"` // "low", "medium", "high"
}

// IsNumeric reports whether every non-missing value parsed as a number.
func (m ColumnMeta) IsNumeric() bool { return m.Kind == KindNumeric }

// ColumnNames returns all column names in header order.
func (c Config) ColumnNames() []string {
	names := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		names[i] = col.Name
	}
	return names
}

// NumericColumns returns numeric column names in header order.
func (c Config) NumericColumns() []string {
	var names []string
	for _, col := range c.Columns {
		if col.IsNumeric() {
			names = append(names, col.Name)
		}
	}
	return names
}

// Column looks up a column by exact name.
func (c Config) Column(name string) (ColumnMeta, bool) {
	for _, col := range c.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return ColumnMeta{}, false
}
