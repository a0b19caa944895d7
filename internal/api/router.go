package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/swiftsites/swiftsites-api/internal/api/handler"
	customMiddleware "github.com/swiftsites/swiftsites-api/internal/api/middleware"
	"github.com/swiftsites/swiftsites-api/internal/config"
	"github.com/swiftsites/swiftsites-api/internal/conversation"
	"github.com/swiftsites/swiftsites-api/internal/llm"
	"github.com/swiftsites/swiftsites-api/internal/llm/gemini"
	"github.com/swiftsites/swiftsites-api/internal/llm/groq"
	"github.com/swiftsites/swiftsites-api/internal/llm/ollama"
	"github.com/swiftsites/swiftsites-api/internal/llm/openai"
	"github.com/swiftsites/swiftsites-api/internal/notify"
	"github.com/swiftsites/swiftsites-api/internal/repository/mongodb"
	"github.com/swiftsites/swiftsites-api/internal/repository/redis"
	"github.com/swiftsites/swiftsites-api/internal/security"
	"github.com/swiftsites/swiftsites-api/internal/service"
)

// NewRouter creates and configures the HTTP router. redisClient may be nil;
// rate limiting is skipped in that case.
func NewRouter(cfg *config.Config, db *mongodb.Client, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize security components
	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
		cfg.Auth.AdminTokenTTL,
	)

	// Initialize repositories
	userRepo := mongodb.NewUserRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	prefRepo := mongodb.NewPreferenceRepository(db)

	// Initialize LLM router with providers
	llmRouter := llm.NewRouter(cfg.LLM.DefaultProvider)

	log.Info().Msgf("Initializing LLM providers. Default: %s", cfg.LLM.DefaultProvider)

	if cfg.LLM.Groq.APIKey != "" {
		llmRouter.RegisterProvider(groq.NewProvider(cfg.LLM.Groq.APIKey, cfg.LLM.Groq.Model, cfg.LLM.RequestTimeout))
	}
	if cfg.LLM.OpenAI.APIKey != "" {
		llmRouter.RegisterProvider(openai.NewProvider(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model, cfg.LLM.RequestTimeout))
	}
	if cfg.LLM.Ollama.Host != "" {
		log.Info().Str("host", cfg.LLM.Ollama.Host).Msg("Registering Ollama provider")
		llmRouter.RegisterProvider(ollama.NewProvider(cfg.LLM.Ollama.Host, cfg.LLM.Ollama.DefaultModel, cfg.LLM.RequestTimeout))
	}
	if cfg.LLM.Gemini.APIKey != "" {
		llmRouter.RegisterProvider(gemini.NewProvider(cfg.LLM.Gemini))
	}

	gateway := llm.NewGateway(llmRouter)
	orchestrator := conversation.NewOrchestrator(gateway)

	// Reviewer notification channel, optional
	var notifier notify.Notifier
	if cfg.Notify.Enabled() {
		notifier = notify.NewMailer(cfg.Notify)
	} else {
		log.Warn().Msg("Reviewer notifications disabled, no SMTP configuration")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	preferenceService := service.NewPreferenceService(userRepo, prefRepo, notifier)
	adminService := service.NewAdminService(adminRepo, userRepo, prefRepo, jwtManager, cfg.Auth.AdminSecretKey)

	// Initialize handlers
	aiHandler := handler.NewAIHandler(orchestrator)
	authHandler := handler.NewAuthHandler(authService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)
	adminHandler := handler.NewAdminHandler(adminService)

	adminAuth := customMiddleware.NewAdminAuth(jwtManager, adminRepo)

	var rateLimitMiddleware *customMiddleware.RateLimitMiddleware
	if redisClient != nil {
		rateLimiter := redis.NewRateLimiter(
			redisClient,
			cfg.Security.RateLimit.RequestsPerMinute,
			cfg.Security.RateLimit.Burst,
		)
		rateLimitMiddleware = customMiddleware.NewRateLimitMiddleware(rateLimiter)
	}

	r.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))
		r.Get("/providers", handler.ListProviders(cfg, llmRouter))

		// AI endpoint, rate limited when redis is available
		r.Group(func(r chi.Router) {
			if rateLimitMiddleware != nil {
				r.Use(rateLimitMiddleware.Limit)
			}
			r.Post("/ai", aiHandler.Complete)
		})

		// Handoff submission
		r.Post("/preferences", preferenceHandler.Submit)

		// Client accounts
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Reviewer surface
		r.Route("/admin", func(r chi.Router) {
			r.Post("/register", adminHandler.Register)
			r.Post("/login", adminHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(adminAuth.Authenticate)

				r.Get("/users", adminHandler.ListUsers)
				r.Get("/preference/{id}", adminHandler.GetPreference)
			})
		})
	})

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler())
	}

	return r
}
