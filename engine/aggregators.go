package engine

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// ============================================================================
// AGGREGATORS - Grouping and aggregation via View
// ============================================================================

// ============================================================================
// GROUPING
// ============================================================================

// Frequencies counts distinct non-missing values of a column.
// Groups come back in first-appearance order.
func Frequencies(view View, column string) []Group {
	if !view.HasColumn(column) {
		return nil
	}
	pos := make(map[string]int)
	var groups []Group
	for i := 0; i < view.Len(); i++ {
		c := view.Cell(i, column)
		if c.Missing {
			continue
		}
		if p, ok := pos[c.Raw]; ok {
			groups[p].Count++
			continue
		}
		pos[c.Raw] = len(groups)
		groups = append(groups, Group{Key: c.Raw, Count: 1, first: i})
	}
	return groups
}

// ============================================================================
// AGGREGATION
// ============================================================================

// Numbers collects the numeric cells of a column, skipping the rest.
func Numbers(view View, column string) []float64 {
	if !view.HasColumn(column) {
		return nil
	}
	out := make([]float64, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		if c := view.Cell(i, column); c.IsNum {
			out = append(out, c.Num)
		}
	}
	return out
}

// Mean is the arithmetic mean of a column's numeric cells.
// ok is false when the column has none.
func Mean(view View, column string) (float64, bool) {
	nums := Numbers(view, column)
	if len(nums) == 0 {
		return 0, false
	}
	m, err := stats.Mean(stats.Float64Data(nums))
	if err != nil {
		return 0, false
	}
	return m, true
}

// ============================================================================
// SORTING
// ============================================================================

// SortGroups orders groups by count, largest first; ties keep first appearance.
func SortGroups(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].first < groups[j].first
	})
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// RoundTo1 rounds half away from zero to one decimal place.
func RoundTo1(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}

// FormatFixed1 formats with exactly one decimal ("27.0", "31.4").
func FormatFixed1(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1)
}
