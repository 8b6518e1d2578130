package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/listdeck/listdeck/internal/handlers"
	"github.com/listdeck/listdeck/pkg/listquery"
)

// DocumentClient accesses the document collection. It satisfies
// listview.Querier[handlers.DocumentResponse].
type DocumentClient struct {
	c *Client
}

// Documents returns the document collection client.
func (c *Client) Documents() *DocumentClient {
	return &DocumentClient{c: c}
}

// Query fetches one page of documents.
func (dc *DocumentClient) Query(ctx context.Context, req listquery.PageRequest) (listquery.Result[handlers.DocumentResponse], error) {
	var result listquery.Result[handlers.DocumentResponse]
	err := dc.c.do(ctx, http.MethodGet, "/api/documents", req.Values(), nil, &result)
	return result, err
}

// Get fetches a single document by ID.
func (dc *DocumentClient) Get(ctx context.Context, id string) (*handlers.DocumentResponse, error) {
	var doc handlers.DocumentResponse
	if err := dc.c.do(ctx, http.MethodGet, "/api/documents/"+url.PathEscape(id), nil, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Upload records a new document owned by the session user.
func (dc *DocumentClient) Upload(ctx context.Context, req handlers.UploadDocumentRequest) (*handlers.DocumentResponse, error) {
	var doc handlers.DocumentResponse
	if err := dc.c.do(ctx, http.MethodPost, "/api/documents/upload", nil, req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Update applies a partial update to a document.
func (dc *DocumentClient) Update(ctx context.Context, id string, req handlers.UpdateDocumentRequest) (*handlers.DocumentResponse, error) {
	var doc handlers.DocumentResponse
	if err := dc.c.do(ctx, http.MethodPut, "/api/documents/"+url.PathEscape(id), nil, req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes a single document.
func (dc *DocumentClient) Delete(ctx context.Context, id string) error {
	return dc.c.do(ctx, http.MethodDelete, "/api/documents/"+url.PathEscape(id), nil, nil, nil)
}

// BulkDelete removes many documents at once and reports how many existed.
func (dc *DocumentClient) BulkDelete(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("no ids given")
	}
	var resp handlers.BulkDeleteResponse
	err := dc.c.do(ctx, http.MethodPost, "/api/documents/bulk-delete", nil, handlers.BulkDeleteRequest{IDs: ids}, &resp)
	return resp.DeletedCount, err
}
