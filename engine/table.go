package engine

import (
	"fmt"
)

// ============================================================================
// TABLE - In-memory dataset + zero-copy views
// ============================================================================
// The loader builds a Table once per dataset; it is never mutated after that.
// Builders read through the View interface so a preview window (SubView)
// costs an index list, not a copy.
//
// Implementations:
//   Table   - columns of parsed cells, header order preserved
//   SubView - subset of rows (indices into parent)
// ============================================================================

// ColumnKind is the inferred type of a column.
type ColumnKind string

const (
	Numeric ColumnKind = "numeric"
	Text    ColumnKind = "text"
)

// Cell is one parsed CSV value. Raw keeps the original text.
type Cell struct {
	Raw     string  `json:"raw"`
	Num     float64 `json:"num,omitempty"`
	IsNum   bool    `json:"isNum,omitempty"`
	Missing bool    `json:"missing,omitempty"`
}

// Column is a named, homogeneous sequence of cells.
type Column struct {
	Name  string     `json:"name"`
	Kind  ColumnKind `json:"kind"`
	Cells []Cell     `json:"-"`
}

// View provides indexed access to a dataset.
// Builders call Cell in tight loops; keep implementations fast.
type View interface {
	Len() int
	ColumnNames() []string // header order
	HasColumn(name string) bool
	Kind(name string) ColumnKind
	Cell(index int, name string) Cell
}

// ============================================================================
// TABLE
// ============================================================================

// Table is the parsed form of one CSV file.
type Table struct {
	name    string
	columns []Column
	names   []string
	index   map[string]int
	rows    int
}

// NewTable builds a Table. All columns must share one row count.
func NewTable(name string, columns []Column) (*Table, error) {
	t := &Table{
		name:    name,
		columns: columns,
		names:   make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		if i == 0 {
			t.rows = len(col.Cells)
		} else if len(col.Cells) != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, len(col.Cells), t.rows)
		}
		if _, dup := t.index[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		t.names[i] = col.Name
		t.index[col.Name] = i
	}
	return t, nil
}

// Name is the dataset the table was loaded from.
func (t *Table) Name() string { return t.name }

func (t *Table) Len() int               { return t.rows }
func (t *Table) ColumnNames() []string { return t.names }

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) Kind(name string) ColumnKind {
	if i, ok := t.index[name]; ok {
		return t.columns[i].Kind
	}
	return Text
}

func (t *Table) Cell(i int, name string) Cell {
	c, ok := t.index[name]
	if !ok || i < 0 || i >= t.rows {
		return Cell{Missing: true}
	}
	return t.columns[c].Cells[i]
}

// Head returns a view over the first n rows (fewer if the table is shorter).
func Head(view View, n int) View {
	if n > view.Len() {
		n = view.Len()
	}
	if n < 0 {
		n = 0
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return newSubView(view, indices)
}

// NumericColumns returns numeric column names in header order.
func NumericColumns(view View) []string {
	var out []string
	for _, name := range view.ColumnNames() {
		if view.Kind(name) == Numeric {
			out = append(out, name)
		}
	}
	return out
}

// ============================================================================
// SUB VIEW - row subset (zero-copy)
// ============================================================================

// SubView is a subset of a parent View.
// Holds indices into the parent, no data copy.
type SubView struct {
	parent  View
	indices []int
}

func newSubView(parent View, indices []int) View {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int                    { return len(v.indices) }
func (v *SubView) ColumnNames() []string       { return v.parent.ColumnNames() }
func (v *SubView) HasColumn(name string) bool  { return v.parent.HasColumn(name) }
func (v *SubView) Kind(name string) ColumnKind { return v.parent.Kind(name) }

func (v *SubView) Cell(i int, name string) Cell {
	if i < 0 || i >= len(v.indices) {
		return Cell{Missing: true}
	}
	return v.parent.Cell(v.indices[i], name)
}
