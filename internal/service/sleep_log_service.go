package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/repository"
	"github.com/sleepwise/coach-api/pkg/pagination"
)

// SleepLogService stores and lists raw daily records.
type SleepLogService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.LogRequest) (*domain.SleepLogResponse, error)
	// List returns logs newest-first plus a cursor for the next page
	// (empty when exhausted).
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLogResponse, string, error)
}

type sleepLogService struct {
	sleepLogRepo repository.SleepLogRepository
	userRepo     repository.UserRepository
}

func NewSleepLogService(sleepLogRepo repository.SleepLogRepository, userRepo repository.UserRepository) SleepLogService {
	return &sleepLogService{sleepLogRepo: sleepLogRepo, userRepo: userRepo}
}

func (s *sleepLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.LogRequest) (*domain.SleepLogResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entry := &domain.SleepLog{
		UserID:           userID,
		Age:              req.Age,
		Gender:           req.Gender,
		SleepDuration:    req.SleepDuration,
		PhysicalActivity: req.PhysicalActivity,
		StressLevel:      req.StressLevel,
		BMICategory:      req.BMICategory,
		BloodPressure:    req.BloodPressure,
		HeartRate:        req.HeartRate,
		DailySteps:       req.DailySteps,
	}
	if err := s.sleepLogRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	resp := entry.ToResponse()
	return &resp, nil
}

func (s *sleepLogService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLogResponse, string, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		return nil, "", domain.ErrNotFound
	}

	logs, err := s.sleepLogRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, "", err
	}

	// The repository fetches one extra row to detect another page.
	limit := pagination.NormalizeLimit(filter.Limit)
	nextCursor := ""
	if len(logs) > limit {
		logs = logs[:limit]
		last := logs[len(logs)-1]
		cursor := pagination.Cursor{ID: last.ID, CreatedAt: last.CreatedAt}
		nextCursor = cursor.Encode()
	}

	responses := make([]domain.SleepLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, logs[i].ToResponse())
	}
	return responses, nextCursor, nil
}
