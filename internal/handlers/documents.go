package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/go-chi/chi/v5"

	"github.com/listdeck/listdeck/internal/auth"
	"github.com/listdeck/listdeck/internal/models"
	"github.com/listdeck/listdeck/internal/services"
	pkghttp "github.com/listdeck/listdeck/pkg/http"
	"github.com/listdeck/listdeck/pkg/listquery"
)

// DocumentService defines the interface for document business logic
type DocumentService interface {
	QueryDocuments(ctx context.Context, req listquery.PageRequest) (listquery.Result[models.Document], error)
	GetDocumentByID(ctx context.Context, id string) (*models.Document, error)
	UploadDocument(ctx context.Context, doc *models.Document, uploader models.Uploader) (*models.Document, error)
	UpdateDocument(ctx context.Context, id string, update services.DocumentUpdate) (*models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	BulkDeleteDocuments(ctx context.Context, ids []string) (int, error)
}

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	service DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(service DocumentService) *DocumentHandler {
	return &DocumentHandler{
		service: service,
	}
}

// UploadDocumentRequest represents the request body for recording an upload
type UploadDocumentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Type string `json:"type" validate:"required,min=1,max=20"`
	Size int64  `json:"size" validate:"gte=0"`
}

// UpdateDocumentRequest represents the request body for updating a document.
// Absent fields keep their stored values.
type UpdateDocumentRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Type *string `json:"type" validate:"omitempty,min=1,max=20"`
	Size *int64  `json:"size" validate:"omitempty,gte=0"`
}

// DocumentResponse represents a document in the HTTP response
type DocumentResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Size       int64           `json:"size"`
	SizeLabel  string          `json:"sizeLabel"`
	UploadedBy models.Uploader `json:"uploadedBy"`
	UploadedAt string          `json:"uploadedAt"`
}

func documentModelToResponse(doc *models.Document) DocumentResponse {
	return DocumentResponse{
		ID:         doc.ID,
		Name:       doc.Name,
		Type:       doc.Type,
		Size:       doc.Size,
		SizeLabel:  units.HumanSize(float64(doc.Size)),
		UploadedBy: doc.UploadedBy,
		UploadedAt: doc.UploadedAt.Format(time.RFC3339),
	}
}

// RegisterRoutes registers all document routes with the chi router
func (h *DocumentHandler) RegisterRoutes(router chi.Router) {
	router.Route("/documents", func(r chi.Router) {
		r.Get("/", h.QueryDocuments)         // GET /documents
		r.Post("/upload", h.Upload)          // POST /documents/upload
		r.Post("/bulk-delete", h.BulkDelete) // POST /documents/bulk-delete
		r.Get("/{id}", h.GetDocument)        // GET /documents/{id}
		r.Put("/{id}", h.UpdateDocument)     // PUT /documents/{id}
		r.Delete("/{id}", h.DeleteDocument)  // DELETE /documents/{id}
	})
}

// QueryDocuments returns one page of the document collection, filtered and
// sorted according to the query string.
func (h *DocumentHandler) QueryDocuments(w http.ResponseWriter, r *http.Request) {
	req := listquery.ParsePageRequest(r.URL.Query())

	result, err := h.service.QueryDocuments(r.Context(), req)
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to query documents")
		return
	}

	response := listquery.Result[DocumentResponse]{
		Data:       make([]DocumentResponse, len(result.Data)),
		Pagination: result.Pagination,
	}
	for i := range result.Data {
		response.Data[i] = documentModelToResponse(&result.Data[i])
	}

	pkghttp.WriteJSON(w, http.StatusOK, response)
}

// GetDocument retrieves a document by ID
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		pkghttp.WriteBadRequest(w, "Document ID is required")
		return
	}

	doc, err := h.service.GetDocumentByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Document not found")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to get document")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, documentModelToResponse(doc))
}

// Upload records a new document. The uploader is taken from the session,
// never from the request body.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUserFromContext(r)
	if claims == nil {
		pkghttp.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req UploadDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteValidationError(w, err.Error())
		return
	}

	doc := &models.Document{
		Name: strings.TrimSpace(req.Name),
		Type: strings.ToLower(strings.TrimSpace(req.Type)),
		Size: req.Size,
	}
	uploader := models.Uploader{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
	}

	created, err := h.service.UploadDocument(r.Context(), doc, uploader)
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to upload document")
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, documentModelToResponse(created))
}

// UpdateDocument applies a partial update to a document
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		pkghttp.WriteBadRequest(w, "Document ID is required")
		return
	}

	var req UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteValidationError(w, err.Error())
		return
	}

	updated, err := h.service.UpdateDocument(r.Context(), id, services.DocumentUpdate{
		Name: req.Name,
		Type: req.Type,
		Size: req.Size,
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Document not found")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to update document")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, documentModelToResponse(updated))
}

// DeleteDocument removes a single document
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		pkghttp.WriteBadRequest(w, "Document ID is required")
		return
	}

	if err := h.service.DeleteDocument(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Document not found")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to delete document")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// BulkDelete removes all requested documents in one operation
func (h *DocumentHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteValidationError(w, err.Error())
		return
	}

	deleted, err := h.service.BulkDeleteDocuments(r.Context(), req.IDs)
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to delete documents")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, BulkDeleteResponse{Success: true, DeletedCount: deleted})
}
