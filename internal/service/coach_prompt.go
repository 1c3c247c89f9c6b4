package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/llm"
	"github.com/sleepwise/coach-api/internal/repository"
)

// CoachNotConfiguredTip is returned when no advice provider is wired.
const CoachNotConfiguredTip = "Coach not configured. Please set OPENAI_API_KEY."

// coachPrompt renders the de-identified context block sent to the advice
// generator. Field order is stable so coach logs stay comparable.
func coachPrompt(c *domain.CoachContext) string {
	var b strings.Builder
	b.WriteString("Input (de-identified):\n")
	fmt.Fprintf(&b, "- Age Bracket: %s\n", c.AgeBracket)
	fmt.Fprintf(&b, "- Sleep Duration: %sh\n", fmtFloat(c.SleepDurationHrs))
	if c.PredictedQuality != nil {
		fmt.Fprintf(&b, "- Predicted Quality: %.1f/10\n", *c.PredictedQuality)
	}
	fmt.Fprintf(&b, "- Stress Level: %s/10\n", fmtInt(c.StressLevel))
	fmt.Fprintf(&b, "- Daily Steps: %s\n", fmtInt(c.DailySteps))
	fmt.Fprintf(&b, "- BMI: %s\n", orNA(c.BMICategory))
	fmt.Fprintf(&b, "- Disorder Risk: %s\n", c.DisorderRisk)
	fmt.Fprintf(&b, "- Top Drivers: %s\n", strings.Join(c.TopDrivers, ", "))
	return b.String()
}

func fmtFloat(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%g", *v)
}

func fmtInt(v *int) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d", *v)
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

// generateTip calls the advice provider and absorbs every failure mode
// into a fixed fallback output. Prediction requests never fail because
// the coach is unreachable.
func generateTip(ctx context.Context, coach llm.CoachLLM, prompt string) *domain.CoachOutput {
	if coach == nil {
		return &domain.CoachOutput{Tip: CoachNotConfiguredTip, Confidence: domain.ConfidenceNA}
	}
	out, err := coach.GenerateTip(ctx, prompt)
	if err != nil {
		return &domain.CoachOutput{
			Tip:        fmt.Sprintf("Coach call failed: %v", err),
			Confidence: domain.ConfidenceNA,
		}
	}
	return out
}

// storeCoachLog persists the prompt/response pair for an authenticated
// user. Failures are logged and swallowed; they never surface to the
// caller.
func storeCoachLog(ctx context.Context, repo repository.CoachLogRepository, userID uuid.UUID, prompt string, out *domain.CoachOutput) {
	response, err := json.Marshal(out)
	if err != nil {
		log.Printf("coach log: failed to encode response: %v", err)
		return
	}
	entry := &domain.CoachLog{UserID: userID, Prompt: prompt, Response: string(response)}
	if err := repo.Create(ctx, entry); err != nil {
		log.Printf("coach log: failed to store entry: %v", err)
	}
}
