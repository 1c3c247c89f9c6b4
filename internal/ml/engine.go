package ml

const (
	// QualityMin and QualityMax bound the sleep-quality scale. Regressor
	// outputs outside this range are clipped, never rejected.
	QualityMin = 1.0
	QualityMax = 10.0
)

// Engine runs the frozen regression and classification ensembles over an
// aligned feature vector. It owns output clamping; label mapping lives
// with the domain's class table.
type Engine struct {
	regressor  *Ensemble
	classifier *Ensemble
}

// NewEngine wires the two loaded ensembles. Schema validation against
// the preprocessing descriptor happens in the artifact loader before an
// Engine is ever constructed.
func NewEngine(regressor, classifier *Ensemble) *Engine {
	return &Engine{regressor: regressor, classifier: classifier}
}

// Infer returns the clamped quality score and the disorder-risk class
// index for one aligned vector.
func (e *Engine) Infer(x []float64) (quality float64, riskClass int) {
	quality = clamp(e.regressor.PredictValue(x), QualityMin, QualityMax)
	riskClass = e.classifier.PredictClass(x)
	return quality, riskClass
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
