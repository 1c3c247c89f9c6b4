package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sleepwise/coach-api/internal/domain"
)

func TestSleepLogService_Create(t *testing.T) {
	users := NewMockUserRepository()
	sleepLogs := NewMockSleepLogRepository()
	svc := NewSleepLogService(sleepLogs, users)

	user := &domain.User{Email: "sleeper@example.com"}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	req := &domain.LogRequest{HealthRecord: domain.HealthRecord{
		SleepDuration: floatPtr(6.5),
		StressLevel:   intPtr(8),
		BloodPressure: strPtr("140/90"),
	}}

	resp, err := svc.Create(context.Background(), user.ID, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if resp.ID == uuid.Nil {
		t.Error("Create() response has no ID")
	}
	if resp.UserID != user.ID {
		t.Errorf("Create() user = %v, want %v", resp.UserID, user.ID)
	}
	if resp.SleepDuration == nil || *resp.SleepDuration != 6.5 {
		t.Errorf("Create() sleep duration = %v, want 6.5", resp.SleepDuration)
	}
	// A raw log carries no prediction outcome.
	if resp.PredictedQuality != nil || resp.DisorderRisk != nil {
		t.Error("Create() must not attach a prediction to a raw log")
	}
}

func TestSleepLogService_Create_UnknownUser(t *testing.T) {
	svc := NewSleepLogService(NewMockSleepLogRepository(), NewMockUserRepository())

	_, err := svc.Create(context.Background(), uuid.New(), &domain.LogRequest{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Create() error = %v, want ErrNotFound", err)
	}
}

func TestSleepLogService_List_Pagination(t *testing.T) {
	users := NewMockUserRepository()
	sleepLogs := NewMockSleepLogRepository()
	svc := NewSleepLogService(sleepLogs, users)

	user := &domain.User{Email: "sleeper@example.com"}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// The repository contract returns up to limit+1 rows; hand the
	// service exactly that to exercise the next-page detection.
	now := time.Now()
	full := make([]domain.SleepLog, 3)
	for i := range full {
		full[i] = domain.SleepLog{
			ID:        uuid.New(),
			UserID:    user.ID,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		}
	}
	sleepLogs.listResult = full

	items, nextCursor, err := svc.List(context.Background(), user.ID, domain.SleepLogFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("List() returned %d items, want 2", len(items))
	}
	if nextCursor == "" {
		t.Error("List() nextCursor empty, want a cursor for the next page")
	}
	if items[0].ID != full[0].ID || items[1].ID != full[1].ID {
		t.Error("List() must preserve repository order and trim the probe row")
	}
}

func TestSleepLogService_List_LastPage(t *testing.T) {
	users := NewMockUserRepository()
	sleepLogs := NewMockSleepLogRepository()
	svc := NewSleepLogService(sleepLogs, users)

	user := &domain.User{Email: "sleeper@example.com"}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	sleepLogs.listResult = []domain.SleepLog{
		{ID: uuid.New(), UserID: user.ID, CreatedAt: time.Now()},
	}

	items, nextCursor, err := svc.List(context.Background(), user.ID, domain.SleepLogFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("List() returned %d items, want 1", len(items))
	}
	if nextCursor != "" {
		t.Errorf("List() nextCursor = %q, want empty on the last page", nextCursor)
	}
}

func TestSleepLogService_List_UnknownUser(t *testing.T) {
	svc := NewSleepLogService(NewMockSleepLogRepository(), NewMockUserRepository())

	_, _, err := svc.List(context.Background(), uuid.New(), domain.SleepLogFilter{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("List() error = %v, want ErrNotFound", err)
	}
}
