package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sleepwise/coach-api/internal/api/middleware"
	"github.com/sleepwise/coach-api/internal/api/validation"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/service"
	"github.com/sleepwise/coach-api/pkg/problem"
)

// SleepLogHandler handles daily record storage and listing.
type SleepLogHandler struct {
	sleepLogService service.SleepLogService
}

func NewSleepLogHandler(sleepLogService service.SleepLogService) *SleepLogHandler {
	return &SleepLogHandler{sleepLogService: sleepLogService}
}

// ListSleepLogsResponse is the paginated log listing.
// @Description Page of stored daily records.
type ListSleepLogsResponse struct {
	Items []domain.SleepLogResponse `json:"items"`
	// Cursor for the next page; empty when exhausted
	NextCursor string `json:"next_cursor,omitempty"`
}

// Create handles POST /v1/log
// @Summary Store a daily record
// @Description Persist today's raw health record for the authenticated user.
// @Tags logs
// @Accept json
// @Produce json
// @Param body body domain.LogRequest true "Daily record"
// @Success 201 {object} domain.SleepLogResponse "Stored record"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 422 {object} problem.Problem "Validation error"
// @Security BearerAuth
// @Router /log [post]
func (h *SleepLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		problem.Unauthorized("Authorization token required").Write(w)
		return
	}

	var req domain.LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(&req); fieldErrors != nil {
		problem.ValidationError("Request validation failed", fieldErrors).Write(w)
		return
	}

	resp, err := h.sleepLogService.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to store record").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// List handles GET /v1/logs
// @Summary List stored daily records
// @Description List the authenticated user's records, newest first, with cursor pagination.
// @Tags logs
// @Produce json
// @Param limit query integer false "Page size" default(20) maximum(100)
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} ListSleepLogsResponse "Page of records"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Security BearerAuth
// @Router /logs [get]
func (h *SleepLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		problem.Unauthorized("Authorization token required").Write(w)
		return
	}

	filter := domain.SleepLogFilter{
		Cursor: r.URL.Query().Get("cursor"),
		Limit:  parseIntParam(r, "limit", 0),
	}

	items, nextCursor, err := h.sleepLogService.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListSleepLogsResponse{Items: items, NextCursor: nextCursor})
}
