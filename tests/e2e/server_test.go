package e2e

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/listdeck/listdeck/internal/auth"
	"github.com/listdeck/listdeck/internal/handlers"
	"github.com/listdeck/listdeck/internal/repositories"
	"github.com/listdeck/listdeck/internal/routes"
	"github.com/listdeck/listdeck/internal/services"
	"github.com/listdeck/listdeck/pkg/client"
)

// newTestServer wires the full application with seeded fixtures, zero
// artificial latency and a generous login rate limit, then returns a
// client for it.
func newTestServer(t *testing.T) (*httptest.Server, *client.Client) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := repositories.NewUserRepository(repositories.SeedUsers())
	documentRepo := repositories.NewDocumentRepository(repositories.SeedDocuments())

	tokenManager := auth.NewTokenManager("e2e-test-secret", time.Hour)

	userService := services.NewUserService(userRepo, logger)
	documentService := services.NewDocumentService(documentRepo, logger)
	authService := services.NewAuthService(userRepo, tokenManager, logger)

	userHandler := handlers.NewUserHandler(userService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	authHandler := handlers.NewAuthHandler(authService, tokenManager, auth.CookieConfig{})

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Route("/api", func(r chi.Router) {
		routes.RegisterRoutes(r, userHandler, documentHandler, authHandler, tokenManager, 1000)
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server, client.New(server.URL)
}
