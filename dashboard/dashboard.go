package dashboard

import (
	log "github.com/sirupsen/logrus"

	"github.com/spektr-org/momwatch/dataset"
	"github.com/spektr-org/momwatch/engine"
)

// ============================================================================
// INTERACTION CYCLE - Selector → Loader → display chain
// ============================================================================
// One Run is one full pass: pick the dataset, load it (memoized), then build
// metrics, charts, preview and, if the button was pressed, the prediction.
// A load failure stops the pass: the page carries the error and nothing else.
// ============================================================================

// Source loads a dataset's table. *loader.Loader satisfies it.
type Source interface {
	Load(id dataset.ID) (*engine.Table, error)
}

// Request is the user's input for one cycle.
type Request struct {
	Dataset     dataset.ID
	Inputs      engine.PredictorInputs
	Trigger     bool
	PreviewRows int // 0 keeps the default window
}

// Choice is one entry of the dataset selector.
type Choice struct {
	ID       dataset.ID `json:"id"`
	Label    string     `json:"label"`
	Default  bool       `json:"default"`
	Selected bool       `json:"selected"`
}

// Page is everything a renderer needs for one cycle.
type Page struct {
	Dataset dataset.ID `json:"dataset"`
	Choices []Choice   `json:"choices"`

	// Predictor widgets and their current (clamped) values.
	Fields []engine.InputField    `json:"fields,omitempty"`
	Inputs engine.PredictorInputs `json:"inputs"`

	Loaded string         `json:"loaded,omitempty"` // success banner
	Error  string         `json:"error,omitempty"`  // load failure, names the file
	Result *engine.Result `json:"result,omitempty"` // nil after a load failure
}

// Failed reports whether the cycle stopped at the loader.
func (p *Page) Failed() bool { return p.Error != "" }

// Cycle runs interaction cycles against one Source.
type Cycle struct {
	source Source
}

// New returns a Cycle loading datasets through src.
func New(src Source) *Cycle {
	return &Cycle{source: src}
}

// Choices lists the selector entries with id marked as selected.
func Choices(id dataset.ID) []Choice {
	ids := dataset.All()
	out := make([]Choice, 0, len(ids))
	for _, d := range ids {
		out = append(out, Choice{
			ID:       d,
			Label:    d.Label(),
			Default:  d.IsDefault(),
			Selected: d == id,
		})
	}
	return out
}

// Run executes one cycle.
func (c *Cycle) Run(req Request) *Page {
	if req.Dataset == "" {
		req.Dataset = dataset.Default()
	}
	page := &Page{
		Dataset: req.Dataset,
		Choices: Choices(req.Dataset),
		Inputs:  req.Inputs.Clamped(),
	}

	table, err := c.source.Load(req.Dataset)
	if err != nil {
		log.WithField("dataset", req.Dataset.FileName()).WithError(err).Warn("cycle stopped at load")
		page.Error = err.Error()
		return page
	}
	page.Loaded = "Successfully loaded: " + req.Dataset.FileName()
	page.Fields = engine.InputFields()

	opts := []engine.Option{
		engine.WithDataset(req.Dataset.FileName()),
		engine.WithPreviewRows(req.PreviewRows),
	}
	if req.Trigger {
		opts = append(opts, engine.WithTrigger(req.Inputs))
	}
	page.Result = engine.Execute(table, opts...)
	return page
}
