package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sleepwise/coach-api/internal/api/middleware"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/service"
	"github.com/sleepwise/coach-api/pkg/problem"
)

// FeedbackHandler accepts user feedback on coach tips.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// Submit handles POST /v1/feedback
// @Summary Submit tip feedback
// @Description Records whether the user followed a coach tip. Store failures are reported in the payload, not as request errors.
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body domain.FeedbackRequest true "Tip feedback"
// @Success 200 {object} domain.FeedbackResponse "Feedback recorded"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Security BearerAuth
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		problem.Unauthorized("Authorization token required").Write(w)
		return
	}

	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	resp := h.feedbackService.Submit(r.Context(), userID, &req)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
