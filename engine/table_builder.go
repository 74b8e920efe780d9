package engine

// ============================================================================
// TABLE BUILDER - Raw data preview grid
// ============================================================================
// No transformation: cells are shown as read, missing cells as "NaN".
// ============================================================================

// DefaultPreviewRows is the fixed preview window.
const DefaultPreviewRows = 10

// BuildPreview produces a grid of the first n rows with column headers.
func BuildPreview(view View, n int) *TableData {
	head := Head(view, n)
	names := head.ColumnNames()

	columns := make([]GridColumn, 0, len(names))
	for _, name := range names {
		col := GridColumn{Key: name, Label: name, Type: "text", Align: "left"}
		if head.Kind(name) == Numeric {
			col.Type = "number"
			col.Align = "right"
		}
		columns = append(columns, col)
	}

	rows := make([][]string, 0, head.Len())
	for i := 0; i < head.Len(); i++ {
		row := make([]string, 0, len(names))
		for _, name := range names {
			c := head.Cell(i, name)
			if c.Missing {
				row = append(row, "NaN")
				continue
			}
			row = append(row, c.Raw)
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   "Raw Data Preview",
		Columns: columns,
		Rows:    rows,
	}
}
