package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sleepwise/coach-api/internal/api/validation"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/service"
	"github.com/sleepwise/coach-api/pkg/problem"
)

// AuthHandler handles account registration and login.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles POST /v1/auth/signup
// @Summary Register an account
// @Description Create an account with email and password and receive an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body domain.SignupRequest true "Signup request"
// @Success 201 {object} domain.AuthResponse "Account created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 409 {object} problem.Problem "Email already registered"
// @Failure 422 {object} problem.Problem "Validation error"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(&req); fieldErrors != nil {
		problem.ValidationError("Request validation failed", fieldErrors).Write(w)
		return
	}

	resp, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			problem.Conflict("Email already registered").Write(w)
			return
		}
		problem.InternalError("Failed to create account").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// Login handles POST /v1/auth/login
// @Summary Log in
// @Description Exchange email and password for an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body domain.LoginRequest true "Login request"
// @Success 200 {object} domain.AuthResponse "Access token"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Invalid credentials"
// @Failure 422 {object} problem.Problem "Validation error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(&req); fieldErrors != nil {
		problem.ValidationError("Request validation failed", fieldErrors).Write(w)
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			problem.Unauthorized("Invalid email or password").Write(w)
			return
		}
		problem.InternalError("Failed to log in").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
