package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/listdeck/listdeck/internal/auth"
	"github.com/listdeck/listdeck/internal/models"
	"github.com/listdeck/listdeck/internal/services"
	pkghttp "github.com/listdeck/listdeck/pkg/http"
	"github.com/listdeck/listdeck/pkg/listquery"
)

// NewTestRequest creates an HTTP request with JSON body for testing
func NewTestRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithAuthContext adds user claims to request context for testing authenticated endpoints
func WithAuthContext(req *http.Request, userID, name, email string, role models.Role) *http.Request {
	claims := &models.TokenClaims{
		UserID: userID,
		Name:   name,
		Email:  email,
		Role:   role,
	}
	ctx := context.WithValue(req.Context(), auth.UserContextKey, claims)
	return req.WithContext(ctx)
}

// WithChiRouteContext injects URL params so handlers can be tested without a router
func WithChiRouteContext(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// AssertJSONResponse checks that response has correct status and decodes JSON body
func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	contentType := w.Header().Get("Content-Type")
	assert.Equal(t, "application/json", contentType, "Content-Type should be application/json")

	if target != nil {
		err := json.Unmarshal(w.Body.Bytes(), target)
		assert.NoError(t, err, "Failed to decode response JSON")
	}
}

// AssertErrorResponse checks that response is a valid error response
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	var resp pkghttp.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err, "Failed to decode error response")
	assert.Equal(t, expectedError, resp.Error, "Error code mismatch")
	assert.NotEmpty(t, resp.Message, "Error message should not be empty")
}

// MockUserService implements UserService for testing
type MockUserService struct {
	QueryUsersFunc      func(ctx context.Context, req listquery.PageRequest) (listquery.Result[models.User], error)
	GetUserByIDFunc     func(ctx context.Context, id string) (*models.User, error)
	CreateUserFunc      func(ctx context.Context, user *models.User, password string) (*models.User, error)
	UpdateUserFunc      func(ctx context.Context, id string, update services.UserUpdate) (*models.User, error)
	DeleteUserFunc      func(ctx context.Context, id string) error
	BulkDeleteUsersFunc func(ctx context.Context, ids []string) (int, error)
}

func (m *MockUserService) QueryUsers(ctx context.Context, req listquery.PageRequest) (listquery.Result[models.User], error) {
	if m.QueryUsersFunc != nil {
		return m.QueryUsersFunc(ctx, req)
	}
	return listquery.Result[models.User]{Data: []models.User{}}, nil
}

func (m *MockUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserService) CreateUser(ctx context.Context, user *models.User, password string) (*models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user, password)
	}
	return nil, models.ErrInternalServer
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, update services.UserUpdate) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, update)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return models.ErrNotFound
}

func (m *MockUserService) BulkDeleteUsers(ctx context.Context, ids []string) (int, error) {
	if m.BulkDeleteUsersFunc != nil {
		return m.BulkDeleteUsersFunc(ctx, ids)
	}
	return 0, nil
}

// MockDocumentService implements DocumentService for testing
type MockDocumentService struct {
	QueryDocumentsFunc      func(ctx context.Context, req listquery.PageRequest) (listquery.Result[models.Document], error)
	GetDocumentByIDFunc     func(ctx context.Context, id string) (*models.Document, error)
	UploadDocumentFunc      func(ctx context.Context, doc *models.Document, uploader models.Uploader) (*models.Document, error)
	UpdateDocumentFunc      func(ctx context.Context, id string, update services.DocumentUpdate) (*models.Document, error)
	DeleteDocumentFunc      func(ctx context.Context, id string) error
	BulkDeleteDocumentsFunc func(ctx context.Context, ids []string) (int, error)
}

func (m *MockDocumentService) QueryDocuments(ctx context.Context, req listquery.PageRequest) (listquery.Result[models.Document], error) {
	if m.QueryDocumentsFunc != nil {
		return m.QueryDocumentsFunc(ctx, req)
	}
	return listquery.Result[models.Document]{Data: []models.Document{}}, nil
}

func (m *MockDocumentService) GetDocumentByID(ctx context.Context, id string) (*models.Document, error) {
	if m.GetDocumentByIDFunc != nil {
		return m.GetDocumentByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockDocumentService) UploadDocument(ctx context.Context, doc *models.Document, uploader models.Uploader) (*models.Document, error) {
	if m.UploadDocumentFunc != nil {
		return m.UploadDocumentFunc(ctx, doc, uploader)
	}
	return nil, models.ErrInternalServer
}

func (m *MockDocumentService) UpdateDocument(ctx context.Context, id string, update services.DocumentUpdate) (*models.Document, error) {
	if m.UpdateDocumentFunc != nil {
		return m.UpdateDocumentFunc(ctx, id, update)
	}
	return nil, models.ErrNotFound
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, id string) error {
	if m.DeleteDocumentFunc != nil {
		return m.DeleteDocumentFunc(ctx, id)
	}
	return models.ErrNotFound
}

func (m *MockDocumentService) BulkDeleteDocuments(ctx context.Context, ids []string) (int, error) {
	if m.BulkDeleteDocumentsFunc != nil {
		return m.BulkDeleteDocumentsFunc(ctx, ids)
	}
	return 0, nil
}

// MockAuthService implements AuthService for testing
type MockAuthService struct {
	LoginFunc  func(ctx context.Context, email, password string) (*models.User, string, error)
	SignupFunc func(ctx context.Context, name, email, password string) (*models.User, string, error)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, "", models.ErrUnauthorized
}

func (m *MockAuthService) Signup(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, name, email, password)
	}
	return nil, "", models.ErrInternalServer
}
