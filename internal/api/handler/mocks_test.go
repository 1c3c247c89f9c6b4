package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/sleepwise/coach-api/internal/domain"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	signupFunc func(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error)
	loginFunc  func(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error) {
	if m.signupFunc != nil {
		return m.signupFunc(ctx, req)
	}
	return &domain.AuthResponse{AccessToken: "token", UserID: uuid.New()}, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return &domain.AuthResponse{AccessToken: "token", UserID: uuid.New()}, nil
}

// MockPredictionService is a mock implementation of PredictionService
type MockPredictionService struct {
	predictFunc func(ctx context.Context, userID *uuid.UUID, rec *domain.HealthRecord) (*domain.PredictResponse, error)
	lastUserID  *uuid.UUID
}

func (m *MockPredictionService) Predict(ctx context.Context, userID *uuid.UUID, rec *domain.HealthRecord) (*domain.PredictResponse, error) {
	m.lastUserID = userID
	if m.predictFunc != nil {
		return m.predictFunc(ctx, userID, rec)
	}
	return &domain.PredictResponse{
		PredictedQuality: 6.2,
		DisorderRisk:     domain.RiskNone,
		TopDrivers:       []string{"Stress Level", "Sleep Duration"},
		CoachTip:         "tip",
		Confidence:       domain.ConfidenceMedium,
	}, nil
}

// MockCoachService is a mock implementation of CoachService
type MockCoachService struct {
	adviseFunc func(ctx context.Context, userID *uuid.UUID, req *domain.CoachRequest) (*domain.CoachResponse, error)
}

func (m *MockCoachService) Advise(ctx context.Context, userID *uuid.UUID, req *domain.CoachRequest) (*domain.CoachResponse, error) {
	if m.adviseFunc != nil {
		return m.adviseFunc(ctx, userID, req)
	}
	return &domain.CoachResponse{Tip: "tip", Confidence: domain.ConfidenceMedium}, nil
}

// MockSleepLogService is a mock implementation of SleepLogService
type MockSleepLogService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.LogRequest) (*domain.SleepLogResponse, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLogResponse, string, error)
	lastFilter domain.SleepLogFilter
}

func (m *MockSleepLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.LogRequest) (*domain.SleepLogResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepLogResponse{ID: uuid.New(), UserID: userID}, nil
}

func (m *MockSleepLogService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLogResponse, string, error) {
	m.lastFilter = filter
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return []domain.SleepLogResponse{}, "", nil
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	seriesFunc     func(ctx context.Context, userID uuid.UUID, days int) (*domain.DashboardSeries, error)
	topDriversFunc func(ctx context.Context, userID uuid.UUID, days int) (*domain.TopDriversSummary, error)
	lastDays       int
}

func (m *MockDashboardService) Series(ctx context.Context, userID uuid.UUID, days int) (*domain.DashboardSeries, error) {
	m.lastDays = days
	if m.seriesFunc != nil {
		return m.seriesFunc(ctx, userID, days)
	}
	return &domain.DashboardSeries{}, nil
}

func (m *MockDashboardService) TopDrivers(ctx context.Context, userID uuid.UUID, days int) (*domain.TopDriversSummary, error) {
	m.lastDays = days
	if m.topDriversFunc != nil {
		return m.topDriversFunc(ctx, userID, days)
	}
	return &domain.TopDriversSummary{LatestTopDrivers: []string{}, DriverCounts: map[string]int{}}, nil
}

// MockFeedbackService is a mock implementation of FeedbackService
type MockFeedbackService struct {
	submitFunc  func(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) *domain.FeedbackResponse
	lastRequest *domain.FeedbackRequest
}

func (m *MockFeedbackService) Submit(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) *domain.FeedbackResponse {
	m.lastRequest = req
	if m.submitFunc != nil {
		return m.submitFunc(ctx, userID, req)
	}
	return &domain.FeedbackResponse{Status: "ok"}
}
