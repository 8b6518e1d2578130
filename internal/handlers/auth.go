package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/listdeck/listdeck/internal/auth"
	"github.com/listdeck/listdeck/internal/models"
	pkghttp "github.com/listdeck/listdeck/pkg/http"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Signup(ctx context.Context, name, email, password string) (*models.User, string, error)
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service AuthService
	tokens  *auth.TokenManager
	cookies auth.CookieConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service AuthService, tokens *auth.TokenManager, cookies auth.CookieConfig) *AuthHandler {
	return &AuthHandler{
		service: service,
		tokens:  tokens,
		cookies: cookies,
	}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest represents the request body for registering an account
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

// SessionResponse represents a successful login or signup
type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// RegisterProtectedRoutes registers the auth routes that require a session
func (h *AuthHandler) RegisterProtectedRoutes(router chi.Router) {
	router.Post("/auth/logout", h.Logout) // POST /auth/logout
}

// Login authenticates a user and starts a session
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteValidationError(w, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, token, err := h.service.Login(r.Context(), email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			pkghttp.WriteUnauthorized(w, "Invalid email or password")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to log in")
		return
	}

	auth.SetSessionCookie(w, token, h.tokens.SessionMaxAge(), h.cookies)
	pkghttp.WriteJSON(w, http.StatusOK, SessionResponse{
		User:  userModelToResponse(user),
		Token: token,
	})
}

// Signup registers a new viewer account and starts a session
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteValidationError(w, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, token, err := h.service.Signup(r.Context(), strings.TrimSpace(req.Name), email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			pkghttp.WriteConflict(w, "A user with this email already exists")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to sign up")
		return
	}

	auth.SetSessionCookie(w, token, h.tokens.SessionMaxAge(), h.cookies)
	pkghttp.WriteJSON(w, http.StatusCreated, SessionResponse{
		User:  userModelToResponse(user),
		Token: token,
	})
}

// Logout ends the session by clearing the cookie. The token itself stays
// valid until expiry; there is no server-side session store to revoke.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.cookies)
	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out",
	})
}
