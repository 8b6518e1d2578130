package client

import (
	"context"
	"net/http"

	"github.com/listdeck/listdeck/internal/handlers"
)

// Login authenticates against the API and stores the returned token for
// subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*handlers.SessionResponse, error) {
	var session handlers.SessionResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, handlers.LoginRequest{
		Email:    email,
		Password: password,
	}, &session)
	if err != nil {
		return nil, err
	}

	c.SetToken(session.Token)
	return &session, nil
}

// Signup registers a new account and stores the returned token.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*handlers.SessionResponse, error) {
	var session handlers.SessionResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", nil, handlers.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &session)
	if err != nil {
		return nil, err
	}

	c.SetToken(session.Token)
	return &session, nil
}

// Logout ends the session and drops the stored token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}
