package engine

// ============================================================================
// ENGINE OPTIONS - Functional options for Execute()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Dataset     string
	PreviewRows int
	Trigger     *PredictorInputs // non-nil when the predictor button was pressed
}

// WithDataset labels the result with the dataset it was computed from.
func WithDataset(name string) Option {
	return func(c *config) {
		c.Dataset = name
	}
}

// WithPreviewRows changes the preview window. Values < 1 are ignored.
func WithPreviewRows(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.PreviewRows = n
		}
	}
}

// WithTrigger runs the manual predictor on the given inputs.
func WithTrigger(in PredictorInputs) Option {
	return func(c *config) {
		c.Trigger = &in
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		PreviewRows: DefaultPreviewRows,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
