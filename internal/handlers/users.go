package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/listdeck/listdeck/internal/models"
	"github.com/listdeck/listdeck/internal/services"
	pkghttp "github.com/listdeck/listdeck/pkg/http"
	"github.com/listdeck/listdeck/pkg/listquery"
)

// UserService defines the interface for user business logic
type UserService interface {
	QueryUsers(ctx context.Context, req listquery.PageRequest) (listquery.Result[models.User], error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User, password string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, update services.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	BulkDeleteUsers(ctx context.Context, ids []string) (int, error)
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// Request/Response DTOs

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=admin editor viewer"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// UpdateUserRequest represents the request body for updating a user.
// Absent fields keep their stored values.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,email,max=100"`
	Role  *string `json:"role" validate:"omitempty,oneof=admin editor viewer"`
}

// BulkDeleteRequest represents the request body for deleting many records at once
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// BulkDeleteResponse reports how many records were actually removed
type BulkDeleteResponse struct {
	Success      bool `json:"success"`
	DeletedCount int  `json:"deletedCount"`
}

// UserResponse represents a user in the HTTP response
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func userModelToResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

// RegisterRoutes registers all user routes with the chi router
func (h *UserHandler) RegisterRoutes(router chi.Router) {
	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.QueryUsers)              // GET /users
		r.Post("/", h.CreateUser)             // POST /users
		r.Post("/bulk-delete", h.BulkDelete)  // POST /users/bulk-delete
		r.Put("/{id}", h.UpdateUser)          // PUT /users/{id}
		r.Delete("/{id}", h.DeleteUser)       // DELETE /users/{id}
	})
}

// QueryUsers returns one page of the user collection, filtered and sorted
// according to the query string.
func (h *UserHandler) QueryUsers(w http.ResponseWriter, r *http.Request) {
	req := listquery.ParsePageRequest(r.URL.Query())

	result, err := h.service.QueryUsers(r.Context(), req)
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to query users")
		return
	}

	response := listquery.Result[UserResponse]{
		Data:       make([]UserResponse, len(result.Data)),
		Pagination: result.Pagination,
	}
	for i := range result.Data {
		response.Data[i] = userModelToResponse(&result.Data[i])
	}

	pkghttp.WriteJSON(w, http.StatusOK, response)
}

// CreateUser creates a new user
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteValidationError(w, err.Error())
		return
	}

	user := &models.User{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Role:  models.Role(req.Role),
	}
	if user.Role == "" {
		user.Role = models.RoleViewer
	}

	created, err := h.service.CreateUser(r.Context(), user, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			pkghttp.WriteConflict(w, "A user with this email already exists")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to create user")
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, userModelToResponse(created))
}

// UpdateUser applies a partial update to a user
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		pkghttp.WriteBadRequest(w, "User ID is required")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteValidationError(w, err.Error())
		return
	}

	update := services.UserUpdate{Name: req.Name, Email: req.Email}
	if req.Role != nil {
		role := models.Role(*req.Role)
		update.Role = &role
	}

	updated, err := h.service.UpdateUser(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "User not found")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to update user")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, userModelToResponse(updated))
}

// DeleteUser removes a single user
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		pkghttp.WriteBadRequest(w, "User ID is required")
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "User not found")
			return
		}
		pkghttp.WriteInternalError(w, "Failed to delete user")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// BulkDelete removes all requested users in one operation
func (h *UserHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteValidationError(w, err.Error())
		return
	}

	deleted, err := h.service.BulkDeleteUsers(r.Context(), req.IDs)
	if err != nil {
		pkghttp.WriteInternalError(w, "Failed to delete users")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, BulkDeleteResponse{Success: true, DeletedCount: deleted})
}
