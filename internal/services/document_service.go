package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/listdeck/listdeck/internal/models"
	"github.com/listdeck/listdeck/pkg/listquery"
)

// DocumentRepository defines the interface for document data access
type DocumentRepository interface {
	List(ctx context.Context) ([]models.Document, error)
	GetByID(ctx context.Context, id string) (*models.Document, error)
	Create(ctx context.Context, doc *models.Document) (*models.Document, error)
	Update(ctx context.Context, id string, doc *models.Document) (*models.Document, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (int, error)
}

var documentSchema = listquery.NewSchema[models.Document]().
	SortableString("id", func(d models.Document) string { return d.ID }).
	SortableString("name", func(d models.Document) string { return d.Name }).
	SortableString("type", func(d models.Document) string { return d.Type }).
	SortableNumber("size", func(d models.Document) int64 { return d.Size }).
	SortableTime("uploadedAt", func(d models.Document) time.Time { return d.UploadedAt }).
	SortableString("uploadedBy.name", func(d models.Document) string { return d.UploadedBy.Name }).
	SortableString("uploadedBy.email", func(d models.Document) string { return d.UploadedBy.Email }).
	Searchable(func(d models.Document) string { return d.Name }).
	Searchable(func(d models.Document) string { return d.Type }).
	Searchable(func(d models.Document) string { return d.UploadedBy.Name }).
	Searchable(func(d models.Document) string { return d.UploadedBy.Email })

// DocumentService handles document business logic
type DocumentService struct {
	repo   DocumentRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(repo DocumentRepository, logger *slog.Logger) *DocumentService {
	return &DocumentService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// QueryDocuments filters, sorts and paginates the document collection
func (s *DocumentService) QueryDocuments(ctx context.Context, req listquery.PageRequest) (listquery.Result[models.Document], error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list documents", slog.Any("error", err))
		return listquery.Result[models.Document]{}, models.ErrInternalServer
	}

	return listquery.Run(docs, req, documentSchema), nil
}

// GetDocumentByID retrieves a document by ID
func (s *DocumentService) GetDocumentByID(ctx context.Context, id string) (*models.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("document not found", slog.String("document_id", id))
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get document", slog.String("document_id", id), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return doc, nil
}

// UploadDocument records a new document with the uploader's identity and
// the current timestamp.
func (s *DocumentService) UploadDocument(ctx context.Context, doc *models.Document, uploader models.Uploader) (*models.Document, error) {
	doc.UploadedBy = uploader
	doc.UploadedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		s.logger.Error("failed to create document", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("document uploaded",
		slog.String("document_id", created.ID),
		slog.String("uploader_id", uploader.ID))
	return created, nil
}

// DocumentUpdate carries the fields an update request may change. Nil
// fields keep the current value.
type DocumentUpdate struct {
	Name *string
	Type *string
	Size *int64
}

// UpdateDocument merges the provided fields onto the stored document
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, update DocumentUpdate) (*models.Document, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("document not found", slog.String("document_id", id))
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get document", slog.String("document_id", id), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	merged := *current
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Type != nil {
		merged.Type = *update.Type
	}
	if update.Size != nil {
		merged.Size = *update.Size
	}

	updated, err := s.repo.Update(ctx, id, &merged)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to update document", slog.String("document_id", id), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("document updated", slog.String("document_id", id))
	return updated, nil
}

// DeleteDocument removes a single document
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("document not found", slog.String("document_id", id))
			return models.ErrNotFound
		}
		s.logger.Error("failed to delete document", slog.String("document_id", id), slog.Any("error", err))
		return models.ErrInternalServer
	}

	s.logger.Info("document deleted", slog.String("document_id", id))
	return nil
}

// BulkDeleteDocuments removes the given documents and reports how many
// were deleted. IDs that do not exist are skipped, not errors.
func (s *DocumentService) BulkDeleteDocuments(ctx context.Context, ids []string) (int, error) {
	deleted, err := s.repo.BulkDelete(ctx, ids)
	if err != nil {
		s.logger.Error("failed to bulk delete documents", slog.Int("requested", len(ids)), slog.Any("error", err))
		return 0, models.ErrInternalServer
	}

	s.logger.Info("documents deleted", slog.Int("requested", len(ids)), slog.Int("deleted", deleted))
	return deleted, nil
}
