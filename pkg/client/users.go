package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/listdeck/listdeck/internal/handlers"
	"github.com/listdeck/listdeck/pkg/listquery"
)

// UserClient accesses the user collection. It satisfies
// listview.Querier[handlers.UserResponse].
type UserClient struct {
	c *Client
}

// Users returns the user collection client.
func (c *Client) Users() *UserClient {
	return &UserClient{c: c}
}

// Query fetches one page of users.
func (uc *UserClient) Query(ctx context.Context, req listquery.PageRequest) (listquery.Result[handlers.UserResponse], error) {
	var result listquery.Result[handlers.UserResponse]
	err := uc.c.do(ctx, http.MethodGet, "/api/users", req.Values(), nil, &result)
	return result, err
}

// Create adds a new user.
func (uc *UserClient) Create(ctx context.Context, req handlers.CreateUserRequest) (*handlers.UserResponse, error) {
	var user handlers.UserResponse
	if err := uc.c.do(ctx, http.MethodPost, "/api/users", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies a partial update to a user.
func (uc *UserClient) Update(ctx context.Context, id string, req handlers.UpdateUserRequest) (*handlers.UserResponse, error) {
	var user handlers.UserResponse
	if err := uc.c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a single user.
func (uc *UserClient) Delete(ctx context.Context, id string) error {
	return uc.c.do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, nil, nil)
}

// BulkDelete removes many users at once and reports how many existed.
func (uc *UserClient) BulkDelete(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("no ids given")
	}
	var resp handlers.BulkDeleteResponse
	err := uc.c.do(ctx, http.MethodPost, "/api/users/bulk-delete", nil, handlers.BulkDeleteRequest{IDs: ids}, &resp)
	return resp.DeletedCount, err
}
