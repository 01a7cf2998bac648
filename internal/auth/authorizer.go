package auth

import (
	"context"
	"sync"

	"github.com/nkiryanov/cookbook/internal/logger"
	"github.com/nkiryanov/cookbook/internal/models"
	"github.com/nkiryanov/cookbook/internal/session"
)

// Authorizer owns the user state for the application lifetime. Login
// status is derived from the session store alone; the asynchronous
// profile fetch only enriches the user with identity fields.
type Authorizer struct {
	mu       sync.Mutex
	svc      *Service
	sessions *session.Store
	logger   logger.Logger

	user models.User

	// gen invalidates in-flight profile fetches on login/logout
	gen uint64
}

func NewAuthorizer(svc *Service, sessions *session.Store, l logger.Logger) *Authorizer {
	if l == nil {
		l = logger.NewNoOp()
	}

	return &Authorizer{
		svc:      svc,
		sessions: sessions,
		logger:   l,
		user: models.User{
			Session: sessions.SessionToken(),
			Loading: true,
		},
	}
}

// User returns the current user state.
func (a *Authorizer) User() models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

// IsLoggedIn is a pure derived check on the session store. It does not
// wait for the profile fetch.
func (a *Authorizer) IsLoggedIn() bool {
	return a.sessions.SessionToken() != ""
}

// Login persists the token and re-enters the loading state so the next
// Refresh fetches a fresh profile.
func (a *Authorizer) Login(token session.ClientToken) {
	a.sessions.Update(token)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.user = models.User{
		Session: a.sessions.SessionToken(),
		Loading: true,
	}
}

// Logout clears the session synchronously. Any in-flight profile fetch
// is discarded on completion.
func (a *Authorizer) Logout() {
	a.sessions.Clear()

	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.user = models.User{Loading: false}
}

// Refresh resolves the loading state: fetches profile info when a
// session exists, otherwise just leaves loading. Loading becomes false
// on success and on failure alike; identity fields are populated only
// on success. A completion that lost the generation race is a no-op.
func (a *Authorizer) Refresh(ctx context.Context) {
	a.mu.Lock()
	if !a.user.Loading {
		a.mu.Unlock()
		return
	}
	if a.user.Session == "" {
		a.user.Loading = false
		a.mu.Unlock()
		return
	}
	gen := a.gen
	a.mu.Unlock()

	info, err := a.svc.UserInfo(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gen != gen {
		return
	}

	a.user.Loading = false
	if err != nil {
		a.logger.Warn("Failed to fetch user info", "error", err)
		return
	}
	a.user.UserInfo = info
}
