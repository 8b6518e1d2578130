package repositories

import (
	"context"

	"github.com/listdeck/listdeck/internal/models"
)

type DocumentRepository struct {
	store *EntityStore[models.Document]
}

func NewDocumentRepository(seed []models.Document) *DocumentRepository {
	return &DocumentRepository{
		store: NewEntityStore(seed, func(d models.Document, id string) models.Document {
			d.ID = id
			return d
		}),
	}
}

// List returns a copy of every document, unfiltered.
func (r *DocumentRepository) List(ctx context.Context) ([]models.Document, error) {
	return r.store.List(), nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	doc, ok := r.store.GetByID(id)
	if !ok {
		return nil, models.ErrNotFound
	}
	return &doc, nil
}

// Create assigns the next id and appends the document.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	created := r.store.Add(*doc)
	return &created, nil
}

// Update replaces the stored record, preserving id and upload timestamp.
func (r *DocumentRepository) Update(ctx context.Context, id string, doc *models.Document) (*models.Document, error) {
	updated, ok := r.store.Update(id, func(existing models.Document) models.Document {
		next := *doc
		next.ID = existing.ID
		next.UploadedAt = existing.UploadedAt
		return next
	})
	if !ok {
		return nil, models.ErrNotFound
	}
	return &updated, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	if !r.store.Delete(id) {
		return models.ErrNotFound
	}
	return nil
}

// BulkDelete removes every document whose id is in ids and returns the count.
func (r *DocumentRepository) BulkDelete(ctx context.Context, ids []string) (int, error) {
	return r.store.BulkDelete(ids), nil
}

// Reset restores the seed fixtures.
func (r *DocumentRepository) Reset() {
	r.store.Reset()
}
