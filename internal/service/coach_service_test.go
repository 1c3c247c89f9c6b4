package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sleepwise/coach-api/internal/domain"
)

func coachRequest() *domain.CoachRequest {
	return &domain.CoachRequest{
		Age:           52,
		Gender:        "Male",
		SleepDuration: 5.0,
		StressLevel:   8,
		DailySteps:    2000,
		BMICategory:   "Obese",
		DisorderRisk:  domain.RiskSleepApnea,
		TopDrivers:    []string{"BMI Category_Obese", "Stress Level"},
	}
}

func TestCoachService_Advise(t *testing.T) {
	coach := &MockCoachLLM{out: &domain.CoachOutput{
		Tip:        "Try a short evening walk.",
		Confidence: domain.ConfidenceHigh,
	}}
	coachLogs := NewMockCoachLogRepository()
	svc := NewCoachService(coach, coachLogs)

	userID := uuid.New()
	resp, err := svc.Advise(context.Background(), &userID, coachRequest())
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}

	if resp.Tip != "Try a short evening walk." {
		t.Errorf("Tip = %q, want the coach output", resp.Tip)
	}
	// Advise never applies the decision rule, even for apnea + obese.
	if resp.RuleOverrideFlag {
		t.Error("RuleOverrideFlag = true, the coach endpoint never overrides")
	}

	if len(coach.prompts) != 1 {
		t.Fatalf("coach called %d times, want 1", len(coach.prompts))
	}
	prompt := coach.prompts[0]
	if !strings.Contains(prompt, "Age Bracket: 45-54") {
		t.Errorf("prompt missing age bracket: %q", prompt)
	}
	if !strings.Contains(prompt, "Disorder Risk: Sleep Apnea") {
		t.Errorf("prompt missing disorder risk: %q", prompt)
	}
	if strings.Contains(prompt, "Predicted Quality") {
		t.Errorf("standalone advice has no prediction, prompt = %q", prompt)
	}

	if len(coachLogs.entries) != 1 {
		t.Fatalf("stored %d coach logs, want 1", len(coachLogs.entries))
	}
}

func TestCoachService_Advise_Anonymous(t *testing.T) {
	coach := &MockCoachLLM{out: &domain.CoachOutput{Tip: "tip", Confidence: domain.ConfidenceLow}}
	coachLogs := NewMockCoachLogRepository()
	svc := NewCoachService(coach, coachLogs)

	if _, err := svc.Advise(context.Background(), nil, coachRequest()); err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(coachLogs.entries) != 0 {
		t.Error("coach log written for an anonymous request")
	}
}

func TestCoachService_Advise_NotConfigured(t *testing.T) {
	svc := NewCoachService(nil, NewMockCoachLogRepository())

	resp, err := svc.Advise(context.Background(), nil, coachRequest())
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if resp.Tip != CoachNotConfiguredTip {
		t.Errorf("Tip = %q, want %q", resp.Tip, CoachNotConfiguredTip)
	}
	if resp.Confidence != domain.ConfidenceNA {
		t.Errorf("Confidence = %q, want n/a", resp.Confidence)
	}
}
