package services

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/listdeck/listdeck/internal/models"
	"github.com/listdeck/listdeck/pkg/listquery"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id string, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (int, error)
}

// userSchema maps query parameters onto user fields for sorting and search.
var userSchema = listquery.NewSchema[models.User]().
	SortableString("id", func(u models.User) string { return u.ID }).
	SortableString("name", func(u models.User) string { return u.Name }).
	SortableString("email", func(u models.User) string { return u.Email }).
	SortableString("role", func(u models.User) string { return string(u.Role) }).
	Searchable(func(u models.User) string { return u.Name }).
	Searchable(func(u models.User) string { return u.Email })

// UserService handles user business logic
type UserService struct {
	repo   UserRepository
	logger *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(repo UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// QueryUsers filters, sorts and paginates the user collection
func (s *UserService) QueryUsers(ctx context.Context, req listquery.PageRequest) (listquery.Result[models.User], error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", slog.Any("error", err))
		return listquery.Result[models.User]{}, models.ErrInternalServer
	}

	return listquery.Run(users, req, userSchema), nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("user not found", slog.String("user_id", id))
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get user", slog.String("user_id", id), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return user, nil
}

// CreateUser creates a new user
func (s *UserService) CreateUser(ctx context.Context, user *models.User, password string) (*models.User, error) {
	existing, err := s.repo.GetByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		s.logger.Info("user already exists", slog.String("email", user.Email))
		return nil, models.ErrConflict
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("failed to hash password", slog.Any("error", err))
			return nil, models.ErrInternalServer
		}
		user.PasswordHash = string(hash)
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error("failed to create user", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user created", slog.String("user_id", created.ID))
	return created, nil
}

// UserUpdate carries the fields an update request may change. Nil fields
// keep the current value.
type UserUpdate struct {
	Name  *string
	Email *string
	Role  *models.Role
}

// UpdateUser merges the provided fields onto the stored user
func (s *UserService) UpdateUser(ctx context.Context, id string, update UserUpdate) (*models.User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("user not found", slog.String("user_id", id))
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get user", slog.String("user_id", id), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	merged := *current
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Role != nil {
		merged.Role = *update.Role
	}

	updated, err := s.repo.Update(ctx, id, &merged)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to update user", slog.String("user_id", id), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user updated", slog.String("user_id", id))
	return updated, nil
}

// DeleteUser removes a single user
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("user not found", slog.String("user_id", id))
			return models.ErrNotFound
		}
		s.logger.Error("failed to delete user", slog.String("user_id", id), slog.Any("error", err))
		return models.ErrInternalServer
	}

	s.logger.Info("user deleted", slog.String("user_id", id))
	return nil
}

// BulkDeleteUsers removes the given users and reports how many were deleted.
// IDs that do not exist are skipped, not errors.
func (s *UserService) BulkDeleteUsers(ctx context.Context, ids []string) (int, error) {
	deleted, err := s.repo.BulkDelete(ctx, ids)
	if err != nil {
		s.logger.Error("failed to bulk delete users", slog.Int("requested", len(ids)), slog.Any("error", err))
		return 0, models.ErrInternalServer
	}

	s.logger.Info("users deleted", slog.Int("requested", len(ids)), slog.Int("deleted", deleted))
	return deleted, nil
}
