package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/cookbook/internal/apperrors"
	"github.com/nkiryanov/cookbook/internal/models"
)

func newTestApp(t *testing.T, endpoint string) *App {
	t.Helper()

	c := NewConfig()
	c.Endpoint = endpoint
	c.AuthEndpoint = endpoint
	c.StateDir = t.TempDir()

	app, err := NewApp(c)
	require.NoError(t, err, "app must initialize with a writable state dir")
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestRun(t *testing.T) {
	t.Run("unknown command", func(t *testing.T) {
		app := newTestApp(t, "http://localhost:0")

		err := Run(context.Background(), app, []string{"frobnicate"})
		require.ErrorIs(t, err, errUsage)
	})

	t.Run("no command", func(t *testing.T) {
		app := newTestApp(t, "http://localhost:0")

		err := Run(context.Background(), app, nil)
		require.ErrorIs(t, err, errUsage)
	})

	t.Run("whoami requires login", func(t *testing.T) {
		app := newTestApp(t, "http://localhost:0")

		err := Run(context.Background(), app, []string{"whoami"})
		require.ErrorIs(t, err, apperrors.ErrNotLoggedIn)
	})

	t.Run("login rejects non callback input", func(t *testing.T) {
		app := newTestApp(t, "http://localhost:0")

		err := Run(context.Background(), app, []string{"login", "https://app.example.com/#error=denied"})
		require.ErrorIs(t, err, apperrors.ErrNotLoginHash)
	})

	t.Run("login prints hosted endpoint without args", func(t *testing.T) {
		app := newTestApp(t, "http://localhost:0")

		err := Run(context.Background(), app, []string{"login"})
		require.NoError(t, err)
	})

	t.Run("recipes get", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/recipes/r-1", r.URL.Path)
			_ = json.NewEncoder(w).Encode(models.Recipe{RecipeID: "r-1", Name: "Pancakes"})
		}))
		defer srv.Close()
		app := newTestApp(t, srv.URL)

		err := Run(context.Background(), app, []string{"recipes", "get", "r-1"})
		require.NoError(t, err)
	})

	t.Run("login persists session across apps", func(t *testing.T) {
		app := newTestApp(t, "http://localhost:0")
		fragment := "#access_token=acc&id_token=ses&expires_in=3600"

		err := Run(context.Background(), app, []string{"login", fragment})
		require.NoError(t, err, "login itself must succeed even when the profile fetch fails")
		assert.True(t, app.Authorizer.IsLoggedIn())

		// A second app over the same state dir sees the session
		c := NewConfig()
		c.StateDir = app.Config.StateDir
		again, err := NewApp(c)
		require.NoError(t, err)
		defer again.Close()
		assert.True(t, again.Authorizer.IsLoggedIn(), "session state has to survive restarts")
	})
}
