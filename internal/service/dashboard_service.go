package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/repository"
)

// DefaultDashboardDays is the default aggregation window.
const DefaultDashboardDays = 7

// DashboardService aggregates stored logs for charting.
type DashboardService interface {
	// Series returns parallel per-log arrays over the last `days` days.
	Series(ctx context.Context, userID uuid.UUID, days int) (*domain.DashboardSeries, error)
	// TopDrivers summarizes attribution drivers over the last `days` days.
	TopDrivers(ctx context.Context, userID uuid.UUID, days int) (*domain.TopDriversSummary, error)
}

type dashboardService struct {
	sleepLogRepo repository.SleepLogRepository
	userRepo     repository.UserRepository
}

func NewDashboardService(sleepLogRepo repository.SleepLogRepository, userRepo repository.UserRepository) DashboardService {
	return &dashboardService{sleepLogRepo: sleepLogRepo, userRepo: userRepo}
}

func (s *dashboardService) Series(ctx context.Context, userID uuid.UUID, days int) (*domain.DashboardSeries, error) {
	logs, err := s.logsInWindow(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	series := &domain.DashboardSeries{
		Dates:      make([]string, 0, len(logs)),
		SleepHours: make([]*float64, 0, len(logs)),
		Quality:    make([]*float64, 0, len(logs)),
		Stress:     make([]*int, 0, len(logs)),
		Steps:      make([]*int, 0, len(logs)),
	}
	for i := range logs {
		entry := &logs[i]
		series.Dates = append(series.Dates, entry.CreatedAt.UTC().Format("2006-01-02"))
		series.SleepHours = append(series.SleepHours, entry.SleepDuration)
		series.Quality = append(series.Quality, entry.PredictedQuality)
		series.Stress = append(series.Stress, entry.StressLevel)
		series.Steps = append(series.Steps, entry.DailySteps)
	}
	return series, nil
}

func (s *dashboardService) TopDrivers(ctx context.Context, userID uuid.UUID, days int) (*domain.TopDriversSummary, error) {
	logs, err := s.logsInWindow(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	summary := &domain.TopDriversSummary{
		LatestTopDrivers: []string{},
		DriverCounts:     make(map[string]int),
	}
	// Logs arrive oldest-first, so the last non-empty driver list wins.
	for i := range logs {
		drivers := logs[i].DriverList()
		if len(drivers) == 0 {
			continue
		}
		summary.LatestTopDrivers = drivers
		for _, d := range drivers {
			summary.DriverCounts[d]++
		}
	}
	return summary, nil
}

func (s *dashboardService) logsInWindow(ctx context.Context, userID uuid.UUID, days int) ([]domain.SleepLog, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if days <= 0 {
		days = DefaultDashboardDays
	}
	from := time.Now().UTC().AddDate(0, 0, -days)
	return s.sleepLogRepo.ListSince(ctx, userID, from)
}
