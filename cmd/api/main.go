// Package main is the entrypoint for the Ledgerdash API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ledgerdash/ledgerdash/internal/cache"
	"github.com/ledgerdash/ledgerdash/internal/config"
	"github.com/ledgerdash/ledgerdash/internal/handler"
	"github.com/ledgerdash/ledgerdash/internal/metrics"
	"github.com/ledgerdash/ledgerdash/internal/middleware"
	"github.com/ledgerdash/ledgerdash/internal/repository"
	"github.com/ledgerdash/ledgerdash/internal/server"
	"github.com/ledgerdash/ledgerdash/internal/service"
)

func main() {
	// Initialize context
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize cache
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	// Initialize services
	metricsRecorder := metrics.NewNoop()
	invoiceService := service.NewInvoiceService(repo, cacheClient, logger, metricsRecorder)
	customerService := service.NewCustomerService(repo, cacheClient, logger, metricsRecorder)
	authService := service.NewAuthService(repo, cacheClient, cfg.SessionTTL, logger, metricsRecorder)
	userService := service.NewUserService(repo, cacheClient, authService, logger, metricsRecorder)
	listingService := service.NewListingService(repo, cacheClient, cfg.ViewCacheTTL, logger, metricsRecorder)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, listingService, logger)
	customerHandler := handler.NewCustomerHandler(customerService, listingService, logger)
	dashboardHandler := handler.NewDashboardHandler(listingService, logger)
	authHandler := handler.NewAuthHandler(authService, cacheClient, handler.AuthConfig{
		CookieName:       cfg.SessionCookieName,
		CookieSecure:     cfg.SessionCookieSecure,
		SessionTTL:       cfg.SessionTTL,
		RateLimitEnabled: cfg.LoginRateLimitEnabled,
		RateLimitRPS:     cfg.LoginRateLimitRPS,
		RateLimitBurst:   cfg.LoginRateLimitBurst,
	}, logger)
	userHandler := handler.NewUserHandler(userService, authHandler, logger)

	// Setup router
	r := setupRouter(h, healthHandler, invoiceHandler, customerHandler, dashboardHandler, authHandler, userHandler, repo, cacheClient, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	invoiceHandler *handler.InvoiceHandler,
	customerHandler *handler.CustomerHandler,
	dashboardHandler *handler.DashboardHandler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	repo *repository.Repository,
	cacheClient *cache.Cache,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.DefaultSecurityConfig()))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Root info endpoint
	r.Get("/", h.Hello)

	// Public auth endpoints
	r.Post("/signup", userHandler.Signup)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	// Session middleware configuration
	sessionCfg := middleware.SessionConfig{
		Logger:     logger,
		Repository: repo,
		Cache:      cacheClient,
		CookieName: cfg.SessionCookieName,
	}

	// Dashboard routes (require a session)
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(middleware.Session(sessionCfg))

		r.Get("/", dashboardHandler.Overview)

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", invoiceHandler.List)
			r.Post("/", invoiceHandler.Create)
			r.Post("/{id}", invoiceHandler.Update)
			r.With(middleware.RequireAdmin()).Delete("/{id}", invoiceHandler.Delete)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customerHandler.List)
			r.Post("/", customerHandler.Create)
			r.Post("/{id}", customerHandler.Update)
			r.With(middleware.RequireAdmin()).Delete("/{id}", customerHandler.Delete)
		})
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
