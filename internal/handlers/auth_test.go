package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listdeck/listdeck/internal/auth"
	"github.com/listdeck/listdeck/internal/models"
)

func newTestAuthHandler(service AuthService) *AuthHandler {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthHandler(service, tokens, auth.CookieConfig{})
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("valid credentials set session cookie", func(t *testing.T) {
		service := &MockAuthService{
			LoginFunc: func(ctx context.Context, email, password string) (*models.User, string, error) {
				return &models.User{ID: "1", Name: "Admin User", Email: email, Role: models.RoleAdmin}, "token-123", nil
			},
		}
		handler := newTestAuthHandler(service)

		req := NewTestRequest(t, "POST", "/auth/login", LoginRequest{
			Email:    "admin@example.com",
			Password: "password",
		})
		w := httptest.NewRecorder()
		handler.Login(w, req)

		var resp SessionResponse
		AssertJSONResponse(t, w, http.StatusOK, &resp)

		assert.Equal(t, "1", resp.User.ID)
		assert.Equal(t, "token-123", resp.Token)

		cookie := sessionCookie(w)
		require.NotNil(t, cookie)
		assert.Equal(t, "token-123", cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("bad credentials return generic unauthorized message", func(t *testing.T) {
		handler := newTestAuthHandler(&MockAuthService{})

		req := NewTestRequest(t, "POST", "/auth/login", LoginRequest{
			Email:    "admin@example.com",
			Password: "wrong",
		})
		w := httptest.NewRecorder()
		handler.Login(w, req)

		AssertErrorResponse(t, w, http.StatusUnauthorized, "unauthorized")
	})

	t.Run("malformed email returns validation error", func(t *testing.T) {
		handler := newTestAuthHandler(&MockAuthService{})

		req := NewTestRequest(t, "POST", "/auth/login", LoginRequest{
			Email:    "not-an-email",
			Password: "password",
		})
		w := httptest.NewRecorder()
		handler.Login(w, req)

		AssertErrorResponse(t, w, http.StatusBadRequest, "validation_error")
	})
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("creates account and returns 201", func(t *testing.T) {
		service := &MockAuthService{
			SignupFunc: func(ctx context.Context, name, email, password string) (*models.User, string, error) {
				return &models.User{ID: "6", Name: name, Email: email, Role: models.RoleViewer}, "token-456", nil
			},
		}
		handler := newTestAuthHandler(service)

		req := NewTestRequest(t, "POST", "/auth/signup", SignupRequest{
			Name:     "New User",
			Email:    "new@example.com",
			Password: "longenough",
		})
		w := httptest.NewRecorder()
		handler.Signup(w, req)

		var resp SessionResponse
		AssertJSONResponse(t, w, http.StatusCreated, &resp)
		assert.Equal(t, "viewer", resp.User.Role)
		require.NotNil(t, sessionCookie(w))
	})

	t.Run("short password returns validation error", func(t *testing.T) {
		handler := newTestAuthHandler(&MockAuthService{})

		req := NewTestRequest(t, "POST", "/auth/signup", SignupRequest{
			Name:     "New User",
			Email:    "new@example.com",
			Password: "short",
		})
		w := httptest.NewRecorder()
		handler.Signup(w, req)

		AssertErrorResponse(t, w, http.StatusBadRequest, "validation_error")
	})

	t.Run("existing email returns conflict", func(t *testing.T) {
		service := &MockAuthService{
			SignupFunc: func(ctx context.Context, name, email, password string) (*models.User, string, error) {
				return nil, "", models.ErrConflict
			},
		}
		handler := newTestAuthHandler(service)

		req := NewTestRequest(t, "POST", "/auth/signup", SignupRequest{
			Name:     "Dup",
			Email:    "admin@example.com",
			Password: "longenough",
		})
		w := httptest.NewRecorder()
		handler.Signup(w, req)

		AssertErrorResponse(t, w, http.StatusConflict, "conflict")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	handler := newTestAuthHandler(&MockAuthService{})

	req := NewTestRequest(t, "POST", "/auth/logout", nil)
	req = WithAuthContext(req, "1", "Admin User", "admin@example.com", models.RoleAdmin)
	w := httptest.NewRecorder()
	handler.Logout(w, req)

	var resp map[string]interface{}
	AssertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, true, resp["success"])

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}
