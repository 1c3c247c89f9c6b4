package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/sleepwise/coach-api/docs"
	"github.com/sleepwise/coach-api/internal/api/handler"
	"github.com/sleepwise/coach-api/internal/api/middleware"
	"github.com/sleepwise/coach-api/internal/auth"
)

type Router struct {
	tokens           *auth.TokenService
	authHandler      *handler.AuthHandler
	predictHandler   *handler.PredictHandler
	sleepLogHandler  *handler.SleepLogHandler
	dashboardHandler *handler.DashboardHandler
	feedbackHandler  *handler.FeedbackHandler
}

func NewRouter(
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	predictHandler *handler.PredictHandler,
	sleepLogHandler *handler.SleepLogHandler,
	dashboardHandler *handler.DashboardHandler,
	feedbackHandler *handler.FeedbackHandler,
) *Router {
	return &Router{
		tokens:           tokens,
		authHandler:      authHandler,
		predictHandler:   predictHandler,
		sleepLogHandler:  sleepLogHandler,
		dashboardHandler: dashboardHandler,
		feedbackHandler:  feedbackHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Auth (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", rt.authHandler.Signup)
			r.Post("/login", rt.authHandler.Login)
		})

		// Inference works without a token; an attached token links the
		// prediction to the user's history.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(rt.tokens))
			r.Post("/predict", rt.predictHandler.Predict)
			r.Post("/coach", rt.predictHandler.Coach)
		})

		// Everything touching stored history requires a token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(rt.tokens))
			r.Post("/log", rt.sleepLogHandler.Create)
			r.Get("/logs", rt.sleepLogHandler.List)
			r.Get("/dashboard/series", rt.dashboardHandler.Series)
			r.Get("/dashboard/top-drivers", rt.dashboardHandler.TopDrivers)
			r.Post("/feedback", rt.feedbackHandler.Submit)
		})
	})

	return r
}
