package domain

// RiskLabel is a sleep-disorder risk classification.
// @Description Disorder risk: None, Insomnia, or Sleep Apnea.
type RiskLabel string

const (
	RiskNone       RiskLabel = "None"
	RiskInsomnia   RiskLabel = "Insomnia"
	RiskSleepApnea RiskLabel = "Sleep Apnea"
)

// riskByClass fixes the classifier's label encoding. The order is a
// contract with the training job and must not change independently.
var riskByClass = [...]RiskLabel{RiskNone, RiskInsomnia, RiskSleepApnea}

// NumRiskClasses is the number of disorder classes the classifier emits.
const NumRiskClasses = len(riskByClass)

// RiskLabelForClass maps a classifier class index to its label.
// Indices outside {0,1,2} indicate a broken artifact and panic.
func RiskLabelForClass(classIndex int) RiskLabel {
	return riskByClass[classIndex]
}

// Confidence levels reported alongside coach tips.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
	ConfidenceNA     = "n/a"
)

// PredictRequest is the request body for the predict endpoint.
// @Description Health record to run through the prediction pipeline.
type PredictRequest struct {
	HealthRecord
}

// PredictResponse is the full prediction pipeline output.
// @Description Predicted sleep quality, disorder risk, top drivers, and coach tip.
type PredictResponse struct {
	// Predicted sleep quality on a 1-10 scale, rounded to one decimal
	PredictedQuality float64 `json:"predicted_quality" example:"4.7"`
	// Disorder risk label
	DisorderRisk RiskLabel `json:"disorder_risk" example:"Sleep Apnea"`
	// Top-2 features driving the risk classification
	TopDrivers []string `json:"top_drivers" example:"BP_Systolic,Stress Level"`
	// Coach tip text (or the clinical escalation message when overridden)
	CoachTip string `json:"coach_tip"`
	// Short rationale for the tip, when the coach provides one
	Rationale string `json:"rationale,omitempty"`
	// Coach confidence: low, medium, high, or n/a
	Confidence string `json:"confidence" example:"medium"`
	// True when the clinical decision rule replaced coach advice
	RuleOverrideFlag bool `json:"rule_override_flag"`
	// Trace ID for feedback linking, when tracing is enabled
	TraceID string `json:"trace_id,omitempty"`
}

// CoachRequest asks for advice only, from caller-supplied prediction
// results.
// @Description Request payload for standalone coach advice.
type CoachRequest struct {
	Age           int       `json:"age" validate:"required,min=0,max=120" example:"34"`
	Gender        string    `json:"gender" validate:"required" example:"Male"`
	SleepDuration float64   `json:"sleep_duration" validate:"min=0,max=24" example:"5.5"`
	StressLevel   int       `json:"stress_level" validate:"min=0,max=10" example:"8"`
	DailySteps    int       `json:"daily_steps" validate:"min=0" example:"2000"`
	BMICategory   string    `json:"bmi_category" validate:"required" example:"Obese"`
	DisorderRisk  RiskLabel `json:"disorder_risk" validate:"required,oneof=None Insomnia 'Sleep Apnea'" example:"Insomnia"`
	TopDrivers    []string  `json:"top_drivers" validate:"required,min=1"`
}

// CoachResponse is the standalone coach endpoint output.
// @Description Generated coach tip.
type CoachResponse struct {
	Tip              string `json:"tip"`
	Rationale        string `json:"rationale,omitempty"`
	Confidence       string `json:"confidence" example:"medium"`
	RuleOverrideFlag bool   `json:"rule_override_flag"`
	TraceID          string `json:"trace_id,omitempty"`
}

// CoachContext is the de-identified structured context handed to the
// advice generator.
type CoachContext struct {
	AgeBracket       string    `json:"age_bracket"`
	SleepDurationHrs *float64  `json:"sleep_duration_hours,omitempty"`
	PredictedQuality *float64  `json:"predicted_quality,omitempty"`
	StressLevel      *int      `json:"stress_level,omitempty"`
	DailySteps       *int      `json:"daily_steps,omitempty"`
	BMICategory      string    `json:"bmi_category,omitempty"`
	DisorderRisk     RiskLabel `json:"disorder_risk"`
	TopDrivers       []string  `json:"top_drivers"`
}

// CoachOutput is what the advice generator returns, including the fixed
// fallbacks used when the generator is unconfigured or failing.
type CoachOutput struct {
	Tip        string `json:"tip"`
	Rationale  string `json:"rationale,omitempty"`
	Confidence string `json:"confidence"`
}
