package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims are the JWT claims carried by a session token.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   Role   `json:"role,omitempty"`
	jwt.RegisteredClaims
}
