package engine

// ============================================================================
// MANUAL PREDICTOR - Two fixed thresholds over bounded inputs
// ============================================================================
// IDLE until triggered; a trigger evaluates once and returns to IDLE.
// The rule reads value_1 and value_2 only and ignores the loaded dataset.
// value_3 is collected and echoed back but takes no part in the decision.
// ============================================================================

// InputField describes one bounded integer input widget.
type InputField struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Default int    `json:"default"`
}

// Clamp forces v into [Min, Max].
func (f InputField) Clamp(v int) int {
	if v < f.Min {
		return f.Min
	}
	if v > f.Max {
		return f.Max
	}
	return v
}

var (
	Value1Field = InputField{Key: "value_1", Label: "Systolic BP / Baseline Value", Min: 70, Max: 200, Default: 120}
	Value2Field = InputField{Key: "value_2", Label: "Blood Sugar / Fetal Movement", Min: 0, Max: 30, Default: 7}
	Value3Field = InputField{Key: "value_3", Label: "Body Temp / Acceleration", Min: 90, Max: 105, Default: 98}
)

// InputFields lists the predictor widgets in display order.
func InputFields() []InputField {
	return []InputField{Value1Field, Value2Field, Value3Field}
}

// Decision thresholds; a value strictly above either one is high risk.
const (
	Value1Threshold = 140
	Value2Threshold = 12
)

// PredictorInputs is the simulated vital-sign triple.
type PredictorInputs struct {
	Value1 int `json:"value_1"`
	Value2 int `json:"value_2"`
	Value3 int `json:"value_3"`
}

// DefaultInputs returns every widget's default.
func DefaultInputs() PredictorInputs {
	return PredictorInputs{
		Value1: Value1Field.Default,
		Value2: Value2Field.Default,
		Value3: Value3Field.Default,
	}
}

// Clamped returns the inputs forced into their widget bounds.
func (in PredictorInputs) Clamped() PredictorInputs {
	return PredictorInputs{
		Value1: Value1Field.Clamp(in.Value1),
		Value2: Value2Field.Clamp(in.Value2),
		Value3: Value3Field.Clamp(in.Value3),
	}
}

// RiskClass is the predictor's verdict.
type RiskClass string

const (
	HighRisk RiskClass = "HIGH RISK"
	LowRisk  RiskClass = "NORMAL / LOW RISK"
)

// Classify applies the decision rule.
func Classify(value1, value2 int) RiskClass {
	if value1 > Value1Threshold || value2 > Value2Threshold {
		return HighRisk
	}
	return LowRisk
}

// Prediction is the rendered outcome of one trigger.
type Prediction struct {
	Inputs    PredictorInputs `json:"inputs"`
	Class     RiskClass       `json:"class"`
	Message   string          `json:"message"`
	Style     string          `json:"style"` // "error" or "success"
	Celebrate bool            `json:"celebrate"`
}

// Predict clamps the inputs and classifies them.
func Predict(in PredictorInputs) *Prediction {
	in = in.Clamped()
	class := Classify(in.Value1, in.Value2)
	p := &Prediction{
		Inputs:  in,
		Class:   class,
		Message: "AI Result: " + string(class),
	}
	if class == HighRisk {
		p.Style = "error"
	} else {
		p.Style = "success"
		p.Celebrate = true
	}
	return p
}

// ============================================================================
// STATE MACHINE
// ============================================================================

// PredictorState is IDLE or TRIGGERED.
type PredictorState int

const (
	Idle PredictorState = iota
	Triggered
)

func (s PredictorState) String() string {
	if s == Triggered {
		return "TRIGGERED"
	}
	return "IDLE"
}

// Predictor holds the trigger state for one session.
// Nothing from a previous trigger is kept.
type Predictor struct {
	state PredictorState
}

// Trigger evaluates the inputs once and returns to IDLE.
func (p *Predictor) Trigger(in PredictorInputs) *Prediction {
	p.state = Triggered
	defer func() { p.state = Idle }()
	return Predict(in)
}
