package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/cookbook/internal/models"
	"github.com/nkiryanov/cookbook/internal/session"
	"github.com/nkiryanov/cookbook/internal/storage"
)

func loginToken() session.ClientToken {
	return session.ClientToken{AccessToken: "acc", SessionToken: "ses", ExpiresIn: 3600}
}

func TestService_Endpoints(t *testing.T) {
	svc := NewService(Config{Endpoint: "https://id.example.com", ClientID: "client-1"}, session.NewStore(storage.NewMemory()))

	t.Run("login endpoint", func(t *testing.T) {
		got := svc.LoginEndpoint("https://app.example.com", "/recipes")

		assert.Equal(t,
			"https://id.example.com/oauth2/authorize?response_type=token&client_id=client-1&redirect_uri=https%3A%2F%2Fapp.example.com%2Flogin&state=%2Frecipes",
			got,
		)
	})

	t.Run("login endpoint without return path", func(t *testing.T) {
		got := svc.LoginEndpoint("https://app.example.com", "")

		assert.NotContains(t, got, "state=", "state should be omitted when no return path")
	})

	t.Run("logout endpoint", func(t *testing.T) {
		got := svc.LogoutEndpoint("https://app.example.com")

		assert.Equal(t,
			"https://id.example.com/logout?client_id=client-1&logout_uri=https%3A%2F%2Fapp.example.com%2Flogout",
			got,
		)
	})
}

func TestService_UserInfo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.Equal(t, "/oauth2/userInfo", r.URL.Path)
			_ = json.NewEncoder(w).Encode(models.UserInfo{Username: "chef", Email: "chef@example.com"})
		}))
		defer srv.Close()

		sessions := session.NewStore(storage.NewMemory())
		sessions.Update(loginToken())
		svc := NewService(Config{Endpoint: srv.URL, ClientID: "client-1"}, sessions)

		info, err := svc.UserInfo(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Bearer acc", gotAuth)
		assert.Equal(t, "chef", info.Username)
	})

	t.Run("non-ok status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		svc := NewService(Config{Endpoint: srv.URL}, session.NewStore(storage.NewMemory()))

		_, err := svc.UserInfo(context.Background())

		require.Error(t, err)
	})
}

func TestAuthorizer(t *testing.T) {
	newAuthorizer := func(t *testing.T, handler http.HandlerFunc) (*Authorizer, *session.Store) {
		t.Helper()

		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)

		sessions := session.NewStore(storage.NewMemory())
		svc := NewService(Config{Endpoint: srv.URL, ClientID: "client-1"}, sessions)
		return NewAuthorizer(svc, sessions, nil), sessions
	}

	profileHandler := func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.UserInfo{Username: "chef", Name: "Chef", Email: "chef@example.com"})
	}

	t.Run("logged in immediately after login", func(t *testing.T) {
		a, _ := newAuthorizer(t, profileHandler)

		require.False(t, a.IsLoggedIn())

		a.Login(loginToken())

		// No Refresh yet: login status must not depend on the profile fetch
		require.True(t, a.IsLoggedIn())
		assert.True(t, a.User().Loading, "profile should still be loading")
	})

	t.Run("refresh populates profile", func(t *testing.T) {
		a, _ := newAuthorizer(t, profileHandler)
		a.Login(loginToken())

		a.Refresh(context.Background())

		user := a.User()
		assert.False(t, user.Loading)
		assert.Equal(t, "chef", user.Username)
		assert.Equal(t, "chef@example.com", user.Email)
	})

	t.Run("refresh failure still resolves loading", func(t *testing.T) {
		a, _ := newAuthorizer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		a.Login(loginToken())

		a.Refresh(context.Background())

		user := a.User()
		assert.False(t, user.Loading, "loading must resolve on failure too")
		assert.Empty(t, user.Username, "identity fields populated only on success")
	})

	t.Run("refresh without session resolves immediately", func(t *testing.T) {
		requests := 0
		a, _ := newAuthorizer(t, func(w http.ResponseWriter, r *http.Request) {
			requests++
		})

		a.Refresh(context.Background())

		assert.False(t, a.User().Loading)
		assert.Zero(t, requests, "no profile fetch without a session")
	})

	t.Run("logout clears session synchronously", func(t *testing.T) {
		a, sessions := newAuthorizer(t, profileHandler)
		a.Login(loginToken())

		a.Logout()

		assert.False(t, a.IsLoggedIn())
		assert.Equal(t, "", sessions.AccessToken())
		user := a.User()
		assert.False(t, user.Loading)
		assert.Empty(t, user.Session)
	})

	t.Run("stale profile fetch is discarded after logout", func(t *testing.T) {
		received := make(chan struct{})
		release := make(chan struct{})
		a, _ := newAuthorizer(t, func(w http.ResponseWriter, r *http.Request) {
			close(received)
			<-release
			_ = json.NewEncoder(w).Encode(models.UserInfo{Username: "chef"})
		})
		a.Login(loginToken())

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Refresh(context.Background())
		}()

		<-received
		a.Logout()
		close(release)
		wg.Wait()

		user := a.User()
		assert.Empty(t, user.Username, "stale completion must not repopulate the user")
		assert.False(t, user.Loading)
	})
}
