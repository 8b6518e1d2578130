package repositories

import (
	"context"
	"strings"

	"github.com/listdeck/listdeck/internal/models"
)

type UserRepository struct {
	store *EntityStore[models.User]
}

func NewUserRepository(seed []models.User) *UserRepository {
	return &UserRepository{
		store: NewEntityStore(seed, func(u models.User, id string) models.User {
			u.ID = id
			return u
		}),
	}
}

// List returns a copy of every user, unfiltered.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return r.store.List(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.store.GetByID(id)
	if !ok {
		return nil, models.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.store.List() {
		if strings.EqualFold(user.Email, email) {
			return &user, nil
		}
	}
	return nil, models.ErrNotFound
}

// Create assigns the next id and appends the user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	created := r.store.Add(*user)
	return &created, nil
}

// Update replaces the stored record; merging partial changes onto the
// existing record is the service layer's job.
func (r *UserRepository) Update(ctx context.Context, id string, user *models.User) (*models.User, error) {
	updated, ok := r.store.Update(id, func(existing models.User) models.User {
		next := *user
		next.ID = existing.ID
		return next
	})
	if !ok {
		return nil, models.ErrNotFound
	}
	return &updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if !r.store.Delete(id) {
		return models.ErrNotFound
	}
	return nil
}

// BulkDelete removes every user whose id is in ids and returns the count.
func (r *UserRepository) BulkDelete(ctx context.Context, ids []string) (int, error) {
	return r.store.BulkDelete(ids), nil
}

// Reset restores the seed fixtures.
func (r *UserRepository) Reset() {
	r.store.Reset()
}
