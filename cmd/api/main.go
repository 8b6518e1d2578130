package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/listdeck/listdeck/internal/auth"
	"github.com/listdeck/listdeck/internal/config"
	"github.com/listdeck/listdeck/internal/handlers"
	middlewareCustom "github.com/listdeck/listdeck/internal/middleware"
	"github.com/listdeck/listdeck/internal/models"
	"github.com/listdeck/listdeck/internal/repositories"
	"github.com/listdeck/listdeck/internal/routes"
	"github.com/listdeck/listdeck/internal/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("configuration loaded", slog.String("env", cfg.Server.Env))

	// Initialize repositories
	var users []models.User
	var documents []models.Document
	if cfg.Mock.SeedData {
		users = repositories.SeedUsers()
		documents = repositories.SeedDocuments()
	}
	userRepo := repositories.NewUserRepository(users)
	documentRepo := repositories.NewDocumentRepository(documents)

	// Initialize token manager
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenExpiry)
	cookieConfig := auth.CookieConfig{Secure: cfg.Auth.CookieSecure}

	// Initialize services
	userService := services.NewUserService(userRepo, logger)
	documentService := services.NewDocumentService(documentRepo, logger)
	authService := services.NewAuthService(userRepo, tokenManager, logger)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	authHandler := handlers.NewAuthHandler(authService, tokenManager, cookieConfig)

	// Setup CORS middleware
	corsConfig := middlewareCustom.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.Server.AllowedOrigins

	// Setup router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewareCustom.CORS(corsConfig))
	router.Use(middlewareCustom.RequestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// Register API routes behind the configured mock latency
	router.Route("/api", func(r chi.Router) {
		r.Use(middlewareCustom.Latency(cfg.Mock.Latency))
		routes.RegisterRoutes(r, userHandler, documentHandler, authHandler, tokenManager, cfg.Auth.LoginRatePerMinute)
	})

	// Health check
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Create server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server
	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}
