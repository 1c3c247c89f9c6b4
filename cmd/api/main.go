// SleepWise Coach API
//
// REST API for sleep health prediction and coaching.
//
//	@title			SleepWise Coach API
//	@version		1.0
//	@description	Predict sleep quality and disorder risk from daily health records, with attribution-driven coach tips.
//
//	@BasePath	/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the access token.
//
//	@tag.name			auth
//	@tag.description	Account registration and login
//
//	@tag.name			predict
//	@tag.description	Sleep quality and disorder risk inference
//
//	@tag.name			coach
//	@tag.description	Coach tips without a prediction
//
//	@tag.name			sleep-logs
//	@tag.description	Daily record storage and listing
//
//	@tag.name			dashboard
//	@tag.description	Aggregated views over stored records
//
//	@tag.name			feedback
//	@tag.description	Tip feedback capture
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/sleepwise/coach-api/internal/api"
	"github.com/sleepwise/coach-api/internal/api/handler"
	"github.com/sleepwise/coach-api/internal/artifact"
	"github.com/sleepwise/coach-api/internal/auth"
	"github.com/sleepwise/coach-api/internal/config"
	"github.com/sleepwise/coach-api/internal/domain"
	"github.com/sleepwise/coach-api/internal/langfuse"
	"github.com/sleepwise/coach-api/internal/llm"
	"github.com/sleepwise/coach-api/internal/repository"
	"github.com/sleepwise/coach-api/internal/seed"
	"github.com/sleepwise/coach-api/internal/service"
	"github.com/sleepwise/coach-api/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleepwise-coach-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Load the model artifact bundle; the service cannot run without it
	store, err := artifact.Load(cfg.ArtifactDir)
	if err != nil {
		log.Fatalf("Failed to load model artifacts from %s: %v", cfg.ArtifactDir, err)
	}
	log.Printf("Model artifacts loaded: %d features, %d regressor trees, %d classifier trees",
		len(store.Descriptor.FeatureColumns), len(store.Regressor.Trees), len(store.Classifier.Trees))

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.SleepLog{}, &domain.CoachLog{}, &domain.TipFeedback{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sleepLogRepo := repository.NewSleepLogRepository(db)
	coachLogRepo := repository.NewCoachLogRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Token service for signup/login and bearer auth
	tokens := auth.NewTokenService(cfg.JWTSecret)

	// Coach system prompt, with an optional Langfuse-managed override
	systemPrompt := llm.DefaultSystemPrompt
	if cfg.CoachPromptName != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.CoachPromptName,
			PromptLabel: cfg.CoachPromptLabel,
			SavePath:    cfg.CoachPromptCache,
		})
		if err != nil {
			log.Printf("Warning: coach prompt %q unavailable, using built-in prompt: %v", cfg.CoachPromptName, err)
		} else {
			systemPrompt = prompt
		}
	}

	// Initialize coach provider (may be nil if not configured)
	coach := llm.NewCoachLLM(llm.Options{
		Provider:     cfg.CoachProvider,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		OpenAIModel:  cfg.OpenAICoachModel,
		SystemPrompt: systemPrompt,
	})
	if coach == nil {
		log.Println("Warning: coach provider not configured, responses will use the fallback tip")
	}

	// Langfuse ingestion client for feedback scores
	lf := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens)
	predictionService := service.NewPredictionService(store, coach, coachLogRepo, sleepLogRepo)
	coachService := service.NewCoachService(coach, coachLogRepo)
	sleepLogService := service.NewSleepLogService(sleepLogRepo, userRepo)
	dashboardService := service.NewDashboardService(sleepLogRepo, userRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo, lf)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	predictHandler := handler.NewPredictHandler(predictionService, coachService)
	sleepLogHandler := handler.NewSleepLogHandler(sleepLogService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	// Setup router
	router := api.NewRouter(tokens, authHandler, predictHandler, sleepLogHandler, dashboardHandler, feedbackHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
