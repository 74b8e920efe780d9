package engine

import (
	log "github.com/sirupsen/logrus"
)

// ============================================================================
// EXECUTOR - One dashboard pass over a loaded table
// ============================================================================
// Entry point: Execute(view, opts...)
//
// Pipeline (every step reads the same view, none depends on another):
//   1. Metrics summary
//   2. Target column (shared by both charts)
//   3. Proportion + relationship charts
//   4. Raw preview
//   5. Manual predictor, only when triggered
//
// All computation is local; nothing here reads files.
// ============================================================================

// Execute runs the full display chain against a loaded table.
func Execute(view View, opts ...Option) *Result {
	cfg := applyOptions(opts)

	target := TargetColumn(view)

	log.WithFields(log.Fields{
		"dataset": cfg.Dataset,
		"rows":    view.Len(),
		"target":  target,
		"trigger": cfg.Trigger != nil,
	}).Debug("executing dashboard pass")

	result := &Result{
		Success:           true,
		Dataset:           cfg.Dataset,
		Records:           view.Len(),
		Metrics:           Summarize(view),
		TargetColumn:      target,
		ProportionChart:   BuildProportionChart(view, target),
		RelationshipChart: BuildRelationshipChart(view, target),
		Preview:           BuildPreview(view, cfg.PreviewRows),
	}

	if cfg.Trigger != nil {
		var p Predictor
		result.Prediction = p.Trigger(*cfg.Trigger)
		log.WithFields(log.Fields{
			"dataset": cfg.Dataset,
			"class":   result.Prediction.Class,
		}).Info("manual prediction evaluated")
	}

	return result
}
