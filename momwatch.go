// Package momwatch is a small pregnancy-health dashboard over three CSV datasets.
//
// Usage:
//
//	momwatch serve --data-dir ./data
//	momwatch report --dataset fetal_health.csv --predict --value-1 150
//
// Every request re-runs the whole chain: the selected dataset is loaded
// (once per process, then served from the loader cache), summarized into
// metrics, charted, and previewed. The manual predictor only runs when the
// request carries the trigger.
//
// Packages:
//
//	dataset   - the three fixed dataset identifiers
//	schema    - column type discovery (numeric vs text)
//	helpers   - CSV bytes → engine.Table
//	loader    - memoized dataset loading
//	engine    - metrics, charts, preview and predictor (pure functions)
//	dashboard - one interaction cycle → Page view model
//	render    - PNG charts (go-chart) and the terminal report
//	server    - gin HTTP surface
//	config    - kingpin flags with env fallback, logrus setup
//
// Nothing here calls an external service. The only file written is a report
// requested with --out.
package momwatch
