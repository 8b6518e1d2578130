package services

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/listdeck/listdeck/internal/auth"
	"github.com/listdeck/listdeck/internal/models"
)

// AuthService handles authentication business logic
type AuthService struct {
	repo   UserRepository
	tokens *auth.TokenManager
	logger *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(repo UserRepository, tokens *auth.TokenManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies credentials and issues a session token. Bad credentials
// and unknown emails both return ErrUnauthorized so the response does not
// reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("login attempt for unknown email")
			return nil, "", models.ErrUnauthorized
		}
		s.logger.Error("failed to look up user", slog.Any("error", err))
		return nil, "", models.ErrInternalServer
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login attempt with wrong password", slog.String("user_id", user.ID))
		return nil, "", models.ErrUnauthorized
	}

	token, err := s.tokens.GenerateSessionToken(user)
	if err != nil {
		s.logger.Error("failed to generate session token", slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, "", models.ErrInternalServer
	}

	s.logger.Info("user logged in", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
	return user, token, nil
}

// Signup registers a new viewer account and issues a session token
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*models.User, string, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		s.logger.Info("signup attempt for existing email")
		return nil, "", models.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return nil, "", models.ErrInternalServer
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Role:         models.RoleViewer,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error("failed to create user", slog.Any("error", err))
		return nil, "", models.ErrInternalServer
	}

	token, err := s.tokens.GenerateSessionToken(created)
	if err != nil {
		s.logger.Error("failed to generate session token", slog.String("user_id", created.ID), slog.Any("error", err))
		return nil, "", models.ErrInternalServer
	}

	s.logger.Info("user signed up", slog.String("user_id", created.ID))
	return created, token, nil
}
