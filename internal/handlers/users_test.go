package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listdeck/listdeck/internal/models"
	"github.com/listdeck/listdeck/internal/services"
	"github.com/listdeck/listdeck/pkg/listquery"
)

func TestUserHandler_QueryUsers(t *testing.T) {
	t.Run("returns page with pagination metadata", func(t *testing.T) {
		var gotReq listquery.PageRequest
		service := &MockUserService{
			QueryUsersFunc: func(ctx context.Context, req listquery.PageRequest) (listquery.Result[models.User], error) {
				gotReq = req
				return listquery.Result[models.User]{
					Data: []models.User{
						{ID: "1", Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin},
						{ID: "5", Name: "Bob Wilson", Email: "bob.wilson@example.com", Role: models.RoleEditor},
					},
					Pagination: listquery.Pagination{TotalItems: 5, TotalPages: 3, CurrentPage: 0, RowsPerPage: 2},
				}, nil
			},
		}
		handler := NewUserHandler(service)

		req := NewTestRequest(t, "GET", "/users?pageNumber=0&rowsPerPage=2&sortField=name&sortOrder=asc", nil)
		w := httptest.NewRecorder()
		handler.QueryUsers(w, req)

		var resp listquery.Result[UserResponse]
		AssertJSONResponse(t, w, http.StatusOK, &resp)

		assert.Equal(t, 2, gotReq.RowsPerPage)
		assert.Equal(t, "name", gotReq.SortField)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "Admin User", resp.Data[0].Name)
		assert.Equal(t, 5, resp.Pagination.TotalItems)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		service := &MockUserService{
			QueryUsersFunc: func(ctx context.Context, req listquery.PageRequest) (listquery.Result[models.User], error) {
				return listquery.Result[models.User]{}, models.ErrInternalServer
			},
		}
		handler := NewUserHandler(service)

		w := httptest.NewRecorder()
		handler.QueryUsers(w, NewTestRequest(t, "GET", "/users", nil))

		AssertErrorResponse(t, w, http.StatusInternalServerError, "internal_error")
	})
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("creates user with default viewer role", func(t *testing.T) {
		var created *models.User
		service := &MockUserService{
			CreateUserFunc: func(ctx context.Context, user *models.User, password string) (*models.User, error) {
				created = user
				out := *user
				out.ID = "6"
				return &out, nil
			},
		}
		handler := NewUserHandler(service)

		req := NewTestRequest(t, "POST", "/users", CreateUserRequest{
			Name:  "New User",
			Email: "New@Example.com",
		})
		w := httptest.NewRecorder()
		handler.CreateUser(w, req)

		var resp UserResponse
		AssertJSONResponse(t, w, http.StatusCreated, &resp)

		assert.Equal(t, "6", resp.ID)
		assert.Equal(t, "viewer", resp.Role)
		require.NotNil(t, created)
		assert.Equal(t, "new@example.com", created.Email)
	})

	t.Run("missing name returns validation error", func(t *testing.T) {
		handler := NewUserHandler(&MockUserService{})

		req := NewTestRequest(t, "POST", "/users", CreateUserRequest{Email: "x@example.com"})
		w := httptest.NewRecorder()
		handler.CreateUser(w, req)

		AssertErrorResponse(t, w, http.StatusBadRequest, "validation_error")
	})

	t.Run("invalid role returns validation error", func(t *testing.T) {
		handler := NewUserHandler(&MockUserService{})

		req := NewTestRequest(t, "POST", "/users", CreateUserRequest{
			Name:  "X",
			Email: "x@example.com",
			Role:  "superuser",
		})
		w := httptest.NewRecorder()
		handler.CreateUser(w, req)

		AssertErrorResponse(t, w, http.StatusBadRequest, "validation_error")
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		service := &MockUserService{
			CreateUserFunc: func(ctx context.Context, user *models.User, password string) (*models.User, error) {
				return nil, models.ErrConflict
			},
		}
		handler := NewUserHandler(service)

		req := NewTestRequest(t, "POST", "/users", CreateUserRequest{
			Name:  "Dup",
			Email: "admin@example.com",
		})
		w := httptest.NewRecorder()
		handler.CreateUser(w, req)

		AssertErrorResponse(t, w, http.StatusConflict, "conflict")
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	t.Run("passes only provided fields to the service", func(t *testing.T) {
		var gotUpdate services.UserUpdate
		service := &MockUserService{
			UpdateUserFunc: func(ctx context.Context, id string, update services.UserUpdate) (*models.User, error) {
				gotUpdate = update
				return &models.User{ID: id, Name: "John Doe", Email: "john.doe@example.com", Role: models.RoleEditor}, nil
			},
		}
		handler := NewUserHandler(service)

		role := "editor"
		req := NewTestRequest(t, "PUT", "/users/3", UpdateUserRequest{Role: &role})
		req = WithChiRouteContext(req, map[string]string{"id": "3"})
		w := httptest.NewRecorder()
		handler.UpdateUser(w, req)

		var resp UserResponse
		AssertJSONResponse(t, w, http.StatusOK, &resp)

		assert.Nil(t, gotUpdate.Name)
		assert.Nil(t, gotUpdate.Email)
		require.NotNil(t, gotUpdate.Role)
		assert.Equal(t, models.RoleEditor, *gotUpdate.Role)
		assert.Equal(t, "editor", resp.Role)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		handler := NewUserHandler(&MockUserService{})

		name := "Nobody"
		req := NewTestRequest(t, "PUT", "/users/999", UpdateUserRequest{Name: &name})
		req = WithChiRouteContext(req, map[string]string{"id": "999"})
		w := httptest.NewRecorder()
		handler.UpdateUser(w, req)

		AssertErrorResponse(t, w, http.StatusNotFound, "not_found")
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("deletes existing user", func(t *testing.T) {
		service := &MockUserService{
			DeleteUserFunc: func(ctx context.Context, id string) error { return nil },
		}
		handler := NewUserHandler(service)

		req := NewTestRequest(t, "DELETE", "/users/2", nil)
		req = WithChiRouteContext(req, map[string]string{"id": "2"})
		w := httptest.NewRecorder()
		handler.DeleteUser(w, req)

		var resp map[string]bool
		AssertJSONResponse(t, w, http.StatusOK, &resp)
		assert.True(t, resp["success"])
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		handler := NewUserHandler(&MockUserService{})

		req := NewTestRequest(t, "DELETE", "/users/999", nil)
		req = WithChiRouteContext(req, map[string]string{"id": "999"})
		w := httptest.NewRecorder()
		handler.DeleteUser(w, req)

		AssertErrorResponse(t, w, http.StatusNotFound, "not_found")
	})
}

func TestUserHandler_BulkDelete(t *testing.T) {
	t.Run("reports number deleted", func(t *testing.T) {
		service := &MockUserService{
			BulkDeleteUsersFunc: func(ctx context.Context, ids []string) (int, error) {
				return 2, nil
			},
		}
		handler := NewUserHandler(service)

		req := NewTestRequest(t, "POST", "/users/bulk-delete", BulkDeleteRequest{IDs: []string{"1", "2", "999"}})
		w := httptest.NewRecorder()
		handler.BulkDelete(w, req)

		var resp BulkDeleteResponse
		AssertJSONResponse(t, w, http.StatusOK, &resp)
		assert.Equal(t, 2, resp.DeletedCount)
	})

	t.Run("empty id list returns validation error", func(t *testing.T) {
		handler := NewUserHandler(&MockUserService{})

		req := NewTestRequest(t, "POST", "/users/bulk-delete", BulkDeleteRequest{IDs: []string{}})
		w := httptest.NewRecorder()
		handler.BulkDelete(w, req)

		AssertErrorResponse(t, w, http.StatusBadRequest, "validation_error")
	})
}
