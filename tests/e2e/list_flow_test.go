package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listdeck/listdeck/internal/handlers"
	"github.com/listdeck/listdeck/internal/repositories"
	"github.com/listdeck/listdeck/pkg/client"
	"github.com/listdeck/listdeck/pkg/listquery"
	"github.com/listdeck/listdeck/pkg/listview"
)

func loginAsAdmin(t *testing.T, api *client.Client) {
	t.Helper()
	_, err := api.Login(context.Background(), "admin@example.com", repositories.DevPassword)
	require.NoError(t, err)
}

func userNames(items []handlers.UserResponse) []string {
	names := make([]string, len(items))
	for i, u := range items {
		names[i] = u.Name
	}
	return names
}

func newUserController(api *client.Client) *listview.Controller[handlers.UserResponse] {
	return listview.NewController[handlers.UserResponse](api.Users(), func(u handlers.UserResponse) string {
		return u.ID
	})
}

func TestListFlow_PaginationAndSort(t *testing.T) {
	_, api := newTestServer(t)
	loginAsAdmin(t, api)
	ctx := context.Background()

	ctrl := newUserController(api)
	require.NoError(t, ctrl.SetRowsPerPage(ctx, 2))

	state := ctrl.State()
	assert.Equal(t, []string{"Admin User", "Editor User"}, userNames(state.Items))
	assert.Equal(t, 5, state.Pagination.TotalItems)
	assert.Equal(t, 3, state.Pagination.TotalPages)

	require.NoError(t, ctrl.SetPage(ctx, 1))
	assert.Equal(t, []string{"Jane Smith", "John Doe"}, userNames(ctrl.State().Items))

	require.NoError(t, ctrl.SetPage(ctx, 2))
	assert.Equal(t, []string{"Viewer User"}, userNames(ctrl.State().Items))

	// Same field toggles direction, new field resets to ascending
	require.NoError(t, ctrl.SortBy(ctx, "name"))
	state = ctrl.State()
	assert.Equal(t, listquery.Desc, state.SortOrder)
	assert.Equal(t, []string{"Admin User"}, userNames(state.Items)[len(state.Items)-1:])

	require.NoError(t, ctrl.SortBy(ctx, "email"))
	state = ctrl.State()
	assert.Equal(t, "email", state.SortField)
	assert.Equal(t, listquery.Asc, state.SortOrder)
}

func TestListFlow_Search(t *testing.T) {
	_, api := newTestServer(t)
	loginAsAdmin(t, api)
	ctx := context.Background()

	ctrl := newUserController(api)
	require.NoError(t, ctrl.SetRowsPerPage(ctx, 2))
	require.NoError(t, ctrl.SetPage(ctx, 2))

	// Committing a search snaps back to the first page of results
	require.NoError(t, ctrl.CommitSearch(ctx, "john"))

	state := ctrl.State()
	assert.Equal(t, 0, state.Pagination.CurrentPage)
	assert.Equal(t, []string{"John Doe"}, userNames(state.Items))
	assert.Equal(t, 1, state.Pagination.TotalItems)

	// Clearing the search restores the full collection
	require.NoError(t, ctrl.CommitSearch(ctx, ""))
	assert.Equal(t, 5, ctrl.State().Pagination.TotalItems)
}

func TestListFlow_BulkDeleteWithSelection(t *testing.T) {
	_, api := newTestServer(t)
	loginAsAdmin(t, api)
	ctx := context.Background()

	ctrl := newUserController(api)
	require.NoError(t, ctrl.SetRowsPerPage(ctx, 2))

	// Select the whole first page, then one user from the second page
	ctrl.ToggleSelectAll()
	require.NoError(t, ctrl.SetPage(ctx, 1))
	ctrl.ToggleSelect(ctrl.State().Items[0].ID)

	ids := ctrl.SelectedIDs()
	require.Len(t, ids, 3)

	deleted, err := api.Users().BulkDelete(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	require.NoError(t, ctrl.AfterMutation(ctx, ids...))

	state := ctrl.State()
	assert.Equal(t, 0, state.Selected.Count())
	assert.Equal(t, 2, state.Pagination.TotalItems)
}

func TestListFlow_DocumentLifecycle(t *testing.T) {
	_, api := newTestServer(t)
	loginAsAdmin(t, api)
	ctx := context.Background()

	docs := api.Documents()

	uploaded, err := docs.Upload(ctx, handlers.UploadDocumentRequest{
		Name: "Roadmap.pdf",
		Type: "pdf",
		Size: 1024 * 1024,
	})
	require.NoError(t, err)
	assert.Equal(t, "6", uploaded.ID)
	assert.Equal(t, "Admin User", uploaded.UploadedBy.Name)

	fetched, err := docs.Get(ctx, uploaded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap.pdf", fetched.Name)

	newName := "Roadmap v2.pdf"
	updated, err := docs.Update(ctx, uploaded.ID, handlers.UpdateDocumentRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Roadmap v2.pdf", updated.Name)
	assert.Equal(t, "pdf", updated.Type)

	require.NoError(t, docs.Delete(ctx, uploaded.ID))

	_, err = docs.Get(ctx, uploaded.ID)
	assert.Error(t, err)
}

func TestListFlow_DocumentSortBySize(t *testing.T) {
	_, api := newTestServer(t)
	loginAsAdmin(t, api)
	ctx := context.Background()

	req := listquery.DefaultPageRequest()
	req.SortField = "size"
	req.SortOrder = listquery.Desc

	result, err := api.Documents().Query(ctx, req)
	require.NoError(t, err)

	require.Len(t, result.Data, 5)
	assert.Equal(t, "User Guide.pdf", result.Data[0].Name)
	assert.Equal(t, "Q1 Results.xlsx", result.Data[4].Name)
}
