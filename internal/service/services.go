// Package service binds the generic REST client to each resource the
// backend exposes. Every service is a thin typed alias; the behavior
// lives in internal/api.
package service

import (
	"net/http"

	"github.com/nkiryanov/cookbook/internal/api"
	"github.com/nkiryanov/cookbook/internal/auth"
	"github.com/nkiryanov/cookbook/internal/logger"
	"github.com/nkiryanov/cookbook/internal/models"
	"github.com/nkiryanov/cookbook/internal/session"
)

type Config struct {
	// Endpoint is the REST API base URL
	Endpoint string

	// AuthEndpoint is the identity provider base URL
	AuthEndpoint string

	// ClientID identifies this application to the identity provider
	ClientID string

	// HTTPClient is shared by every service; defaults to a plain
	// http.Client
	HTTPClient *http.Client

	// Headers are sent with every resource request
	Headers http.Header

	Logger logger.Logger
}

// Services is the full set of resource clients, constructed once from
// a single session store.
type Services struct {
	Auth     *auth.Service
	Recipes  *api.Client[models.Recipe]
	Lists    *api.Client[models.ShoppingList]
	Tokens   *api.Client[models.ApiToken]
	Shares   *api.Client[models.ShareRequest]
	Settings *api.Client[models.Settings]
	Audits   *api.Client[models.AuditLog]
}

func New(cfg Config, sessions *session.Store) *Services {
	apiCfg := api.Config{
		Endpoint:   cfg.Endpoint,
		Sessions:   sessions,
		HTTPClient: cfg.HTTPClient,
		Headers:    cfg.Headers,
		Logger:     cfg.Logger,
	}

	return &Services{
		Auth: auth.NewService(auth.Config{
			Endpoint:   cfg.AuthEndpoint,
			ClientID:   cfg.ClientID,
			HTTPClient: cfg.HTTPClient,
			Logger:     cfg.Logger,
		}, sessions),
		Recipes:  api.NewReadWrite[models.Recipe]("recipes", apiCfg),
		Lists:    api.NewReadWrite[models.ShoppingList]("lists", apiCfg),
		Tokens:   api.NewReadWrite[models.ApiToken]("tokens", apiCfg),
		Shares:   api.NewReadWrite[models.ShareRequest]("shares", apiCfg),
		Settings: api.NewReadWrite[models.Settings]("settings", apiCfg),
		Audits:   api.NewReadOnly[models.AuditLog]("audits", apiCfg),
	}
}
