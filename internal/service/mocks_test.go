package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sleepwise/coach-api/internal/artifact"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/langfuse"
	"github.com/sleepwise/coach-api/internal/ml"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users     map[uuid.UUID]*domain.User
	err       error
	createErr error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

func (m *MockUserRepository) SetCreateError(err error) {
	m.createErr = err
}

// MockSleepLogRepository is a mock implementation of SleepLogRepository
type MockSleepLogRepository struct {
	logs       []*domain.SleepLog
	listResult []domain.SleepLog
	err        error
}

func NewMockSleepLogRepository() *MockSleepLogRepository {
	return &MockSleepLogRepository{}
}

func (m *MockSleepLogRepository) Create(ctx context.Context, log *domain.SleepLog) error {
	if m.err != nil {
		return m.err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	m.logs = append(m.logs, log)
	return nil
}

func (m *MockSleepLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, log := range m.logs {
		if log.ID == id {
			return log, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockSleepLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepLog, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, *log)
		}
	}
	return result, nil
}

func (m *MockSleepLogRepository) ListSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.SleepLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepLog
	for _, log := range m.logs {
		if log.UserID == userID && !log.CreatedAt.Before(from) {
			result = append(result, *log)
		}
	}
	return result, nil
}

func (m *MockSleepLogRepository) SetError(err error) {
	m.err = err
}

// MockCoachLogRepository is a mock implementation of CoachLogRepository
type MockCoachLogRepository struct {
	entries []*domain.CoachLog
	err     error
}

func NewMockCoachLogRepository() *MockCoachLogRepository {
	return &MockCoachLogRepository{}
}

func (m *MockCoachLogRepository) Create(ctx context.Context, log *domain.CoachLog) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, log)
	return nil
}

func (m *MockCoachLogRepository) SetError(err error) {
	m.err = err
}

// MockFeedbackRepository is a mock implementation of FeedbackRepository
type MockFeedbackRepository struct {
	entries []*domain.TipFeedback
	err     error
}

func NewMockFeedbackRepository() *MockFeedbackRepository {
	return &MockFeedbackRepository{}
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *domain.TipFeedback) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, feedback)
	return nil
}

func (m *MockFeedbackRepository) SetError(err error) {
	m.err = err
}

// MockCoachLLM is a mock advice generator
type MockCoachLLM struct {
	out     *domain.CoachOutput
	err     error
	prompts []string
}

func (m *MockCoachLLM) GenerateTip(ctx context.Context, prompt string) (*domain.CoachOutput, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

// MockLangfuseClient records scores instead of sending them
type MockLangfuseClient struct {
	enabled bool
	scores  []langfuse.ScoreInput
	err     error
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return uuid.New().String(), nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if m.err != nil {
		return m.err
	}
	m.scores = append(m.scores, in)
	return nil
}

// testArtifactStore builds a small but complete bundle: a regressor
// stump on sleep duration and classifier stumps that send obese records
// to the sleep-apnea class.
func testArtifactStore() *artifact.Store {
	desc := &artifact.Descriptor{
		FeatureColumns: []string{
			domain.FieldAge,
			domain.FieldSleepDuration,
			"Systolic BP",
			"Diastolic BP",
			"Gender_Male",
			"BMI Category_Obese",
		},
		NumMedians: map[string]float64{
			domain.FieldAge:           42,
			domain.FieldSleepDuration: 7.2,
			"Systolic BP":             125,
			"Diastolic BP":            82,
		},
		CatModes: map[string]string{
			domain.FieldGender:      "Female",
			domain.FieldBMICategory: "Normal",
		},
		CatCols: []string{domain.FieldGender, domain.FieldBMICategory},
		BPCols:  []string{"Systolic BP", "Diastolic BP"},
	}

	stump := func(class, feature int, thr, leftVal, rightVal float64) ml.Tree {
		return ml.Tree{
			Class:      class,
			Features:   []int{feature, -1, -1},
			Thresholds: []float64{thr, 0, 0},
			Left:       []int{1, -1, -1},
			Right:      []int{2, -1, -1},
			Values:     []float64{0, leftVal, rightVal},
			Covers:     []float64{10, 5, 5},
		}
	}

	regressor := &ml.Ensemble{
		NumFeatures: 6,
		NumClasses:  1,
		BaseScores:  []float64{7.5},
		// Short sleepers lose 2 points, long sleepers gain 0.5.
		Trees: []ml.Tree{stump(0, 1, 6.0, -2.0, 0.5)},
	}
	classifier := &ml.Ensemble{
		NumFeatures: 6,
		NumClasses:  3,
		BaseScores:  []float64{0, 0, 0},
		Trees: []ml.Tree{
			stump(0, 5, 0.5, 1.0, 0),
			stump(2, 5, 0.5, 0, 2.0),
		},
	}

	return &artifact.Store{Regressor: regressor, Classifier: classifier, Descriptor: desc}
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}
