package helpers

import (
	"github.com/pkg/errors"

	"github.com/spektr-org/momwatch/engine"
	"github.com/spektr-org/momwatch/schema"
)

// ============================================================================
// CSV HELPER - Parses CSV bytes into an engine.Table
// ============================================================================
// The loader reads the file; this helper turns raw bytes into typed columns
// using the discovered schema. Numeric columns carry parsed values, text
// columns keep only the raw string. Missing cells are flagged in both.
// ============================================================================

// ParseCSV parses CSV bytes into a Table plus the schema it was typed with.
// Any malformed input (no header, ragged rows, bad quoting) is an error.
func ParseCSV(name string, data []byte) (*engine.Table, *schema.Config, error) {
	headers, rows, err := schema.ReadCSV(data)
	if err != nil {
		return nil, nil, err
	}

	sch := schema.Discover(headers, rows, schema.DiscoverOptions{Name: name})
	table, err := BuildTable(name, sch, rows)
	if err != nil {
		return nil, nil, err
	}
	return table, sch, nil
}

// BuildTable converts already-read rows into a Table typed by sch.
func BuildTable(name string, sch *schema.Config, rows [][]string) (*engine.Table, error) {
	columns := make([]engine.Column, len(sch.Columns))
	for c, meta := range sch.Columns {
		col := engine.Column{
			Name:  meta.Name,
			Kind:  engine.Text,
			Cells: make([]engine.Cell, len(rows)),
		}
		if meta.IsNumeric() {
			col.Kind = engine.Numeric
		}

		for r, row := range rows {
			if meta.Index >= len(row) {
				return nil, errors.Errorf("row %d has %d fields, expected %d", r+1, len(row), len(sch.Columns))
			}
			col.Cells[r] = parseCell(row[meta.Index], col.Kind)
		}
		columns[c] = col
	}

	table, err := engine.NewTable(name, columns)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build table %s", name)
	}
	return table, nil
}

func parseCell(raw string, kind engine.ColumnKind) engine.Cell {
	cell := engine.Cell{Raw: raw}
	if schema.IsMissing(raw) {
		cell.Missing = true
		return cell
	}
	if kind == engine.Numeric {
		cell.Num, cell.IsNum = schema.ParseNumber(raw)
	}
	return cell
}
