package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listdeck/listdeck/internal/models"
	"github.com/listdeck/listdeck/internal/repositories"
	"github.com/listdeck/listdeck/pkg/listquery"
)

func TestAuthFlow(t *testing.T) {
	_, api := newTestServer(t)
	ctx := context.Background()

	t.Run("login with seeded account", func(t *testing.T) {
		session, err := api.Login(ctx, "admin@example.com", repositories.DevPassword)
		require.NoError(t, err)

		assert.Equal(t, "Admin User", session.User.Name)
		assert.Equal(t, "admin", session.User.Role)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := api.Login(ctx, "admin@example.com", "nope")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("requests without a session are rejected", func(t *testing.T) {
		_, anon := newTestServer(t)
		_, err := anon.Documents().Query(ctx, listquery.DefaultPageRequest())
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("signup creates a viewer session", func(t *testing.T) {
		_, api := newTestServer(t)

		session, err := api.Signup(ctx, "New User", "new@example.com", "longenough")
		require.NoError(t, err)
		assert.Equal(t, "viewer", session.User.Role)

		// The fresh session works against the API
		_, err = api.Documents().Query(ctx, listquery.DefaultPageRequest())
		assert.NoError(t, err)
	})

	t.Run("logout drops the token", func(t *testing.T) {
		_, api := newTestServer(t)

		_, err := api.Login(ctx, "admin@example.com", repositories.DevPassword)
		require.NoError(t, err)
		require.NoError(t, api.Logout(ctx))

		_, err = api.Users().Query(ctx, listquery.DefaultPageRequest())
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})
}

func TestRolePermissions(t *testing.T) {
	ctx := context.Background()

	t.Run("editor cannot manage users", func(t *testing.T) {
		_, api := newTestServer(t)

		_, err := api.Login(ctx, "editor@example.com", repositories.DevPassword)
		require.NoError(t, err)

		_, err = api.Users().Query(ctx, listquery.DefaultPageRequest())
		assert.ErrorIs(t, err, models.ErrForbidden)

		// Documents stay open to every authenticated role
		_, err = api.Documents().Query(ctx, listquery.DefaultPageRequest())
		assert.NoError(t, err)
	})

	t.Run("viewer cannot manage users", func(t *testing.T) {
		_, api := newTestServer(t)

		_, err := api.Login(ctx, "viewer@example.com", repositories.DevPassword)
		require.NoError(t, err)

		_, err = api.Users().Query(ctx, listquery.DefaultPageRequest())
		assert.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("admin can manage users", func(t *testing.T) {
		_, api := newTestServer(t)

		_, err := api.Login(ctx, "admin@example.com", repositories.DevPassword)
		require.NoError(t, err)

		result, err := api.Users().Query(ctx, listquery.DefaultPageRequest())
		require.NoError(t, err)
		assert.Equal(t, 5, result.Pagination.TotalItems)
	})
}
