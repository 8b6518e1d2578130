package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/listdeck/listdeck/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	ListFunc       func(ctx context.Context) ([]models.User, error)
	GetByIDFunc    func(ctx context.Context, id string) (*models.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	CreateFunc     func(ctx context.Context, user *models.User) (*models.User, error)
	UpdateFunc     func(ctx context.Context, id string, user *models.User) (*models.User, error)
	DeleteFunc     func(ctx context.Context, id string) error
	BulkDeleteFunc func(ctx context.Context, ids []string) (int, error)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.User{}, nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil, models.ErrInternalServer
}

func (m *MockUserRepository) Update(ctx context.Context, id string, user *models.User) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, user)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return models.ErrNotFound
}

func (m *MockUserRepository) BulkDelete(ctx context.Context, ids []string) (int, error) {
	if m.BulkDeleteFunc != nil {
		return m.BulkDeleteFunc(ctx, ids)
	}
	return 0, nil
}

// MockDocumentRepository implements DocumentRepository for testing
type MockDocumentRepository struct {
	ListFunc       func(ctx context.Context) ([]models.Document, error)
	GetByIDFunc    func(ctx context.Context, id string) (*models.Document, error)
	CreateFunc     func(ctx context.Context, doc *models.Document) (*models.Document, error)
	UpdateFunc     func(ctx context.Context, id string, doc *models.Document) (*models.Document, error)
	DeleteFunc     func(ctx context.Context, id string) error
	BulkDeleteFunc func(ctx context.Context, ids []string) (int, error)
}

func (m *MockDocumentRepository) List(ctx context.Context) ([]models.Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Document{}, nil
}

func (m *MockDocumentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doc)
	}
	return nil, models.ErrInternalServer
}

func (m *MockDocumentRepository) Update(ctx context.Context, id string, doc *models.Document) (*models.Document, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, doc)
	}
	return nil, models.ErrNotFound
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return models.ErrNotFound
}

func (m *MockDocumentRepository) BulkDelete(ctx context.Context, ids []string) (int, error) {
	if m.BulkDeleteFunc != nil {
		return m.BulkDeleteFunc(ctx, ids)
	}
	return 0, nil
}
