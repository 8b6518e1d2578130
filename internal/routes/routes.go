package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/listdeck/listdeck/internal/auth"
	"github.com/listdeck/listdeck/internal/handlers"
	"github.com/listdeck/listdeck/internal/middleware"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(
	router chi.Router,
	userHandler *handlers.UserHandler,
	documentHandler *handlers.DocumentHandler,
	authHandler *handlers.AuthHandler,
	tokenManager *auth.TokenManager,
	loginRatePerMinute int,
) {
	// Public routes - no authentication required
	router.With(middleware.RateLimitByIP(loginRatePerMinute)).Post("/auth/login", authHandler.Login)
	router.With(middleware.RateLimitByIP(loginRatePerMinute)).Post("/auth/signup", authHandler.Signup)

	// Protected routes - authentication required
	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokenManager))

		// Any authenticated user
		documentHandler.RegisterRoutes(r)
		authHandler.RegisterProtectedRoutes(r)

		// User management is closed to editors and viewers
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireSection(auth.SectionUserManagement))
			userHandler.RegisterRoutes(r)
		})
	})
}
