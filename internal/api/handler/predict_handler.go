package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sleepwise/coach-api/internal/api/middleware"
	"github.com/sleepwise/coach-api/internal/api/validation"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/service"
	"github.com/sleepwise/coach-api/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// PredictHandler handles the prediction pipeline and standalone coach
// endpoints.
type PredictHandler struct {
	predictionService service.PredictionService
	coachService      service.CoachService
}

func NewPredictHandler(predictionService service.PredictionService, coachService service.CoachService) *PredictHandler {
	return &PredictHandler{predictionService: predictionService, coachService: coachService}
}

// Predict handles POST /v1/predict
// @Summary Predict sleep quality and disorder risk
// @Description Run the full pipeline: feature alignment, dual-model inference, top-driver attribution, the clinical decision rule, and coach advice. Missing or malformed optional fields are imputed, never rejected. With a bearer token the outcome is also stored for dashboards.
// @Tags predict
// @Accept json
// @Produce json
// @Param body body domain.PredictRequest true "Health record (all fields optional)"
// @Success 200 {object} domain.PredictResponse "Prediction with coach tip"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Security BearerAuth
// @Router /predict [post]
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req domain.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(&req); fieldErrors != nil {
		problem.ValidationError("Request validation failed", fieldErrors).Write(w)
		return
	}

	userID := optionalUserID(r)
	resp, err := h.predictionService.Predict(r.Context(), userID, &req.HealthRecord)
	if err != nil {
		problem.InternalError("Failed to run prediction").Write(w)
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		resp.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Coach handles POST /v1/coach
// @Summary Generate a coach tip from existing prediction results
// @Description Generate advice from caller-supplied risk label and top drivers, without re-running inference.
// @Tags predict
// @Accept json
// @Produce json
// @Param body body domain.CoachRequest true "Coach request"
// @Success 200 {object} domain.CoachResponse "Coach tip"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Security BearerAuth
// @Router /coach [post]
func (h *PredictHandler) Coach(w http.ResponseWriter, r *http.Request) {
	var req domain.CoachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(&req); fieldErrors != nil {
		problem.ValidationError("Request validation failed", fieldErrors).Write(w)
		return
	}

	userID := optionalUserID(r)
	resp, err := h.coachService.Advise(r.Context(), userID, &req)
	if err != nil {
		problem.InternalError("Failed to generate coach tip").Write(w)
		return
	}

	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		resp.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// optionalUserID returns the authenticated user ID or nil.
func optionalUserID(r *http.Request) *uuid.UUID {
	if id, ok := middleware.UserIDFromContext(r.Context()); ok {
		return &id
	}
	return nil
}
