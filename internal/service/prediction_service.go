package service

import (
	"context"
	"log"
	"math"

	"github.com/google/uuid"
	"github.com/sleepwise/coach-api/internal/artifact"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/features"
	"github.com/sleepwise/coach-api/internal/llm"
	"github.com/sleepwise/coach-api/internal/ml"
	"github.com/sleepwise/coach-api/internal/repository"
)

// TopDriverCount is how many attribution drivers a prediction reports.
const TopDriverCount = 2

// PredictionService runs the full pipeline for one record: feature
// alignment, dual-model inference, attribution, the decision rule, and
// coach advice. Each call is stateless; the loaded artifact bundle is
// shared read-only across requests.
type PredictionService interface {
	// Predict runs the pipeline. userID may be nil for anonymous
	// requests; persistence only happens for authenticated ones.
	Predict(ctx context.Context, userID *uuid.UUID, rec *domain.HealthRecord) (*domain.PredictResponse, error)
}

type predictionService struct {
	builder        *features.Builder
	engine         *ml.Engine
	explainer      *ml.Explainer
	featureColumns []string
	coach          llm.CoachLLM
	coachLogRepo   repository.CoachLogRepository
	sleepLogRepo   repository.SleepLogRepository
}

// NewPredictionService wires the pipeline over a loaded artifact bundle.
func NewPredictionService(
	store *artifact.Store,
	coach llm.CoachLLM,
	coachLogRepo repository.CoachLogRepository,
	sleepLogRepo repository.SleepLogRepository,
) PredictionService {
	return &predictionService{
		builder:        features.NewBuilder(store.Descriptor),
		engine:         ml.NewEngine(store.Regressor, store.Classifier),
		explainer:      ml.NewExplainer(store.Classifier),
		featureColumns: store.Descriptor.FeatureColumns,
		coach:          coach,
		coachLogRepo:   coachLogRepo,
		sleepLogRepo:   sleepLogRepo,
	}
}

func (s *predictionService) Predict(ctx context.Context, userID *uuid.UUID, rec *domain.HealthRecord) (*domain.PredictResponse, error) {
	vec := s.builder.Build(rec)

	quality, classIdx := s.engine.Infer(vec)
	risk := domain.RiskLabelForClass(classIdx)

	contribs := s.explainer.Attribute(vec, classIdx)
	topDrivers := ml.TopDrivers(contribs, s.featureColumns, TopDriverCount)

	resp := &domain.PredictResponse{
		PredictedQuality: round1(quality),
		DisorderRisk:     risk,
		TopDrivers:       topDrivers,
	}

	if msg := Decide(risk, rec.BMICategory); msg != "" {
		resp.CoachTip = msg
		resp.Confidence = domain.ConfidenceNA
		resp.RuleOverrideFlag = true
	} else {
		prompt := coachPrompt(&domain.CoachContext{
			AgeBracket:       domain.AgeBracket(rec.Age),
			SleepDurationHrs: rec.SleepDuration,
			PredictedQuality: &quality,
			StressLevel:      rec.StressLevel,
			DailySteps:       rec.DailySteps,
			BMICategory:      derefOr(rec.BMICategory, ""),
			DisorderRisk:     risk,
			TopDrivers:       topDrivers,
		})
		out := generateTip(ctx, s.coach, prompt)
		resp.CoachTip = out.Tip
		resp.Rationale = out.Rationale
		resp.Confidence = out.Confidence

		if userID != nil {
			storeCoachLog(ctx, s.coachLogRepo, *userID, prompt, out)
		}
	}

	if userID != nil {
		s.storeSleepLog(ctx, *userID, rec, resp)
	}

	return resp, nil
}

// storeSleepLog persists the record with its prediction outcome so
// dashboards can aggregate it. Write failures are logged and swallowed.
func (s *predictionService) storeSleepLog(ctx context.Context, userID uuid.UUID, rec *domain.HealthRecord, resp *domain.PredictResponse) {
	risk := string(resp.DisorderRisk)
	entry := &domain.SleepLog{
		UserID:           userID,
		Age:              rec.Age,
		Gender:           rec.Gender,
		SleepDuration:    rec.SleepDuration,
		PhysicalActivity: rec.PhysicalActivity,
		StressLevel:      rec.StressLevel,
		BMICategory:      rec.BMICategory,
		BloodPressure:    rec.BloodPressure,
		HeartRate:        rec.HeartRate,
		DailySteps:       rec.DailySteps,
		PredictedQuality: &resp.PredictedQuality,
		DisorderRisk:     &risk,
	}
	entry.SetDriverList(resp.TopDrivers)
	if err := s.sleepLogRepo.Create(ctx, entry); err != nil {
		log.Printf("sleep log: failed to store prediction: %v", err)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
