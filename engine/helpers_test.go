package engine

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ── Test Data ─────────────────────────────────────────────────────────────────

// mustTable builds a Table from a header and rows, typing columns the way
// the loader does: numeric when every non-empty cell parses.
func mustTable(t *testing.T, header []string, rows ...[]string) *Table {
	t.Helper()
	columns := make([]Column, len(header))
	for c, name := range header {
		col := Column{Name: name, Kind: Numeric, Cells: make([]Cell, len(rows))}
		for r, row := range rows {
			raw := row[c]
			cell := Cell{Raw: raw}
			if strings.TrimSpace(raw) == "" {
				cell.Missing = true
			} else if f, err := strconv.ParseFloat(raw, 64); err == nil {
				cell.Num, cell.IsNum = f, true
			} else {
				col.Kind = Text
			}
			col.Cells[r] = cell
		}
		columns[c] = col
	}
	table, err := NewTable("test.csv", columns)
	require.NoError(t, err)
	return table
}

func maternalTable(t *testing.T) *Table {
	return mustTable(t,
		[]string{"Age", "SystolicBP", "DiastolicBP", "BS", "RiskLevel"},
		[]string{"25", "130", "80", "15", "High Risk"},
		[]string{"35", "140", "90", "13", "Low Risk"},
		[]string{"29", "90", "70", "8", "high risk"},
	)
}

func fetalTable(t *testing.T, health ...string) *Table {
	rows := make([][]string, len(health))
	for i, h := range health {
		rows[i] = []string{strconv.Itoa(120 + i), strconv.Itoa(i), h}
	}
	return mustTable(t, []string{"baseline value", "accelerations", "fetal_health"}, rows...)
}
