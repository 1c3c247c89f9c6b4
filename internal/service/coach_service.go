package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/llm"
	"github.com/sleepwise/coach-api/internal/repository"
)

// CoachService generates advice from caller-supplied prediction results,
// without running inference. It never applies the decision rule; the
// caller already owns the prediction it is asking about.
type CoachService interface {
	Advise(ctx context.Context, userID *uuid.UUID, req *domain.CoachRequest) (*domain.CoachResponse, error)
}

type coachService struct {
	coach        llm.CoachLLM
	coachLogRepo repository.CoachLogRepository
}

func NewCoachService(coach llm.CoachLLM, coachLogRepo repository.CoachLogRepository) CoachService {
	return &coachService{coach: coach, coachLogRepo: coachLogRepo}
}

func (s *coachService) Advise(ctx context.Context, userID *uuid.UUID, req *domain.CoachRequest) (*domain.CoachResponse, error) {
	prompt := coachPrompt(&domain.CoachContext{
		AgeBracket:       domain.AgeBracket(&req.Age),
		SleepDurationHrs: &req.SleepDuration,
		StressLevel:      &req.StressLevel,
		DailySteps:       &req.DailySteps,
		BMICategory:      req.BMICategory,
		DisorderRisk:     req.DisorderRisk,
		TopDrivers:       req.TopDrivers,
	})

	out := generateTip(ctx, s.coach, prompt)

	if userID != nil {
		storeCoachLog(ctx, s.coachLogRepo, *userID, prompt, out)
	}

	return &domain.CoachResponse{
		Tip:        out.Tip,
		Rationale:  out.Rationale,
		Confidence: out.Confidence,
	}, nil
}
