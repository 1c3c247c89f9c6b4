package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sleepwise/coach-api/internal/domain"
)

func TestFeedbackHandler_Submit(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		request        *http.Request
		mockService    *MockFeedbackService
		wantStatusCode int
		wantStatus     string
	}{
		{
			name:           "valid request",
			request:        authedRequest(http.MethodPost, "/v1/feedback", `{"followed": true, "trace_id": "trace-123"}`, userID),
			mockService:    &MockFeedbackService{},
			wantStatusCode: http.StatusOK,
			wantStatus:     "ok",
		},
		{
			name: "no token",
			request: httptest.NewRequest(http.MethodPost, "/v1/feedback",
				http.NoBody),
			mockService:    &MockFeedbackService{},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "invalid JSON",
			request:        authedRequest(http.MethodPost, "/v1/feedback", `{`, userID),
			mockService:    &MockFeedbackService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:    "store failure still returns 200",
			request: authedRequest(http.MethodPost, "/v1/feedback", `{"followed": false}`, userID),
			mockService: &MockFeedbackService{
				submitFunc: func(ctx context.Context, userID uuid.UUID, req *domain.FeedbackRequest) *domain.FeedbackResponse {
					return &domain.FeedbackResponse{Status: "partial", Message: "Feedback received but could not be stored"}
				},
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     "partial",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewFeedbackHandler(tt.mockService)
			rec := httptest.NewRecorder()

			handler.Submit(rec, tt.request)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Submit() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatus != "" {
				var resp domain.FeedbackResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.Status != tt.wantStatus {
					t.Errorf("Submit() payload status = %q, want %q", resp.Status, tt.wantStatus)
				}
			}
		})
	}
}

func TestFeedbackHandler_Submit_PassesRequestThrough(t *testing.T) {
	svc := &MockFeedbackService{}
	handler := NewFeedbackHandler(svc)

	req := authedRequest(http.MethodPost, "/v1/feedback",
		`{"followed": true, "acknowledged": false, "trace_id": "trace-9", "comment": "worked well"}`, uuid.New())
	handler.Submit(httptest.NewRecorder(), req)

	if svc.lastRequest == nil {
		t.Fatal("service never called")
	}
	if !svc.lastRequest.Followed || svc.lastRequest.TraceID != "trace-9" || svc.lastRequest.Comment != "worked well" {
		t.Errorf("forwarded request = %+v, want fields passed through", svc.lastRequest)
	}
	if svc.lastRequest.Acknowledged == nil || *svc.lastRequest.Acknowledged {
		t.Error("acknowledged=false was not forwarded")
	}
}
