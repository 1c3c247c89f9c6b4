package service

import (
	"strings"

	"github.com/sleepwise/coach-api/internal/domain"
)

// ClinicalEscalationMessage replaces coach advice when the decision rule
// fires. The wording is fixed; it must be produced even when the advice
// generator is down or misconfigured.
const ClinicalEscalationMessage = "Recommend clinical evaluation; clinician review required."

// Decide applies the deterministic clinical decision rule: a Sleep Apnea
// risk combined with an obese body-mass category (case-insensitive)
// short-circuits attribution-driven coaching. Returns the escalation
// message, or empty when no override applies.
func Decide(risk domain.RiskLabel, bmiCategory *string) string {
	if risk != domain.RiskSleepApnea {
		return ""
	}
	if bmiCategory == nil || !strings.EqualFold(*bmiCategory, "obese") {
		return ""
	}
	return ClinicalEscalationMessage
}
