package engine

import (
	"strconv"
)

// ============================================================================
// METRICS - Ordered column-presence rules
// ============================================================================
// Each slot holds rules in priority order. The first rule whose predicate
// holds for the view computes the slot's metric; a slot with no applicable
// rule (or a rule that finds nothing to compute) is simply absent.
//
//   slot 1: record count             (always)
//   slot 2: average age              ("Age")
//   slot 3: risk count               ("RiskLevel" → "fetal_health")
// ============================================================================

// Well-known column names.
const (
	ColumnAge         = "Age"
	ColumnRiskLevel   = "RiskLevel"
	ColumnFetalHealth = "fetal_health"
)

// Metric keys.
const (
	MetricRecords    = "records"
	MetricAverageAge = "average_age"
	MetricHighRisk   = "high_risk"
	MetricAtRisk     = "at_risk"
)

type metricRule struct {
	applies func(View) bool
	compute func(View) (Metric, bool)
}

var metricSlots = [][]metricRule{
	{{applies: always, compute: recordCount}},
	{{applies: hasColumn(ColumnAge), compute: averageAge}},
	{
		{applies: hasColumn(ColumnRiskLevel), compute: highRiskCount},
		{applies: hasColumn(ColumnFetalHealth), compute: atRiskCount},
	},
}

// Summarize evaluates every metric slot against the view.
func Summarize(view View) []Metric {
	metrics := make([]Metric, 0, len(metricSlots))
	for _, slot := range metricSlots {
		if m, ok := evaluateSlot(view, slot); ok {
			metrics = append(metrics, m)
		}
	}
	return metrics
}

func evaluateSlot(view View, rules []metricRule) (Metric, bool) {
	for _, r := range rules {
		if r.applies(view) {
			return r.compute(view)
		}
	}
	return Metric{}, false
}

// FindMetric returns the metric with key, if it was produced.
func FindMetric(metrics []Metric, key string) (Metric, bool) {
	for _, m := range metrics {
		if m.Key == key {
			return m, true
		}
	}
	return Metric{}, false
}

// ============================================================================
// RULES
// ============================================================================

func always(View) bool { return true }

func hasColumn(name string) func(View) bool {
	return func(v View) bool { return v.HasColumn(name) }
}

func recordCount(view View) (Metric, bool) {
	return countMetric(MetricRecords, "Total Records", view.Len()), true
}

func averageAge(view View) (Metric, bool) {
	mean, ok := Mean(view, ColumnAge)
	if !ok {
		return Metric{}, false
	}
	return Metric{
		Key:   MetricAverageAge,
		Label: "Average Age",
		Value: FormatFixed1(mean),
		Raw:   RoundTo1(mean),
	}, true
}

func highRiskCount(view View) (Metric, bool) {
	n := CountWhere(view, ColumnRiskLevel, EqualsFold("high risk"))
	return countMetric(MetricHighRisk, "High Risk Count", n), true
}

func atRiskCount(view View) (Metric, bool) {
	n := CountWhere(view, ColumnFetalHealth, GreaterThan(1))
	return countMetric(MetricAtRisk, "At-Risk Fetus", n), true
}

func countMetric(key, label string, n int) Metric {
	return Metric{Key: key, Label: label, Value: strconv.Itoa(n), Raw: float64(n)}
}

// ============================================================================
// TARGET COLUMN
// ============================================================================

// TargetColumn picks the column that drives the proportion chart and the
// scatter coloring: RiskLevel, else fetal_health, else the last column.
// Returns "" only for a view with no columns.
func TargetColumn(view View) string {
	for _, name := range []string{ColumnRiskLevel, ColumnFetalHealth} {
		if view.HasColumn(name) {
			return name
		}
	}
	names := view.ColumnNames()
	if len(names) == 0 {
		return ""
	}
	return names[len(names)-1]
}
