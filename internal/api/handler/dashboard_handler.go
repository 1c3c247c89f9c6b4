package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sleepwise/coach-api/internal/api/middleware"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/service"
	"github.com/sleepwise/coach-api/pkg/problem"
)

// DashboardHandler serves aggregated views over stored predictions.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Series handles GET /v1/dashboard/series
// @Summary Get dashboard time series
// @Description Parallel arrays of logged sleep hours, predicted quality, stress, and steps over a window.
// @Tags dashboard
// @Produce json
// @Param days query integer false "Window in days" default(7) minimum(1) maximum(30)
// @Success 200 {object} domain.DashboardSeries "Time series"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 404 {object} problem.Problem "User not found"
// @Security BearerAuth
// @Router /dashboard/series [get]
func (h *DashboardHandler) Series(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		problem.Unauthorized("Authorization token required").Write(w)
		return
	}

	days, ok := parseDays(r)
	if !ok {
		problem.BadRequest("days must be between 1 and 30").Write(w)
		return
	}

	series, err := h.dashboardService.Series(r.Context(), userID, days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build series").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(series)
}

// TopDrivers handles GET /v1/dashboard/top-drivers
// @Summary Get top-driver summary
// @Description Latest top attribution drivers plus per-driver appearance counts over a window.
// @Tags dashboard
// @Produce json
// @Param days query integer false "Window in days" default(7) minimum(1) maximum(30)
// @Success 200 {object} domain.TopDriversSummary "Driver summary"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 401 {object} problem.Problem "Missing or invalid token"
// @Failure 404 {object} problem.Problem "User not found"
// @Security BearerAuth
// @Router /dashboard/top-drivers [get]
func (h *DashboardHandler) TopDrivers(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		problem.Unauthorized("Authorization token required").Write(w)
		return
	}

	days, ok := parseDays(r)
	if !ok {
		problem.BadRequest("days must be between 1 and 30").Write(w)
		return
	}

	summary, err := h.dashboardService.TopDrivers(r.Context(), userID, days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to summarize drivers").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func parseDays(r *http.Request) (int, bool) {
	days := parseIntParam(r, "days", service.DefaultDashboardDays)
	if days < 1 || days > 30 {
		return 0, false
	}
	return days, true
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
