package engine

import (
	"strings"
)

// ============================================================================
// FILTERS - Row predicates over a single column
// ============================================================================
// Single pass per column. Missing cells never match.
// ============================================================================

// CellPredicate decides whether a cell matches.
type CellPredicate func(Cell) bool

// CountWhere counts rows whose cell in column matches pred.
// An absent column counts zero.
func CountWhere(view View, column string, pred CellPredicate) int {
	if !view.HasColumn(column) {
		return 0
	}
	n := 0
	for i := 0; i < view.Len(); i++ {
		c := view.Cell(i, column)
		if c.Missing {
			continue
		}
		if pred(c) {
			n++
		}
	}
	return n
}

// EqualsFold matches cells whose lower-cased text equals the lower-cased value.
func EqualsFold(value string) CellPredicate {
	want := strings.ToLower(value)
	return func(c Cell) bool {
		return strings.ToLower(c.Raw) == want
	}
}

// GreaterThan matches numeric cells strictly above threshold.
func GreaterThan(threshold float64) CellPredicate {
	return func(c Cell) bool {
		return c.IsNum && c.Num > threshold
	}
}
