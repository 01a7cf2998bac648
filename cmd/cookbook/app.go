package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nkiryanov/cookbook/internal/alerts"
	"github.com/nkiryanov/cookbook/internal/auth"
	"github.com/nkiryanov/cookbook/internal/logger"
	"github.com/nkiryanov/cookbook/internal/service"
	"github.com/nkiryanov/cookbook/internal/session"
	"github.com/nkiryanov/cookbook/internal/storage"
)

// App wires the whole client together: one session store over the
// layered state backends, the resource services and the authorizer.
type App struct {
	Config     *Config
	Logger     logger.Logger
	Sessions   *session.Store
	Services   *service.Services
	Authorizer *auth.Authorizer
	Alerts     *alerts.Queue

	db *storage.SQLite
}

func NewApp(c *Config) (*App, error) {
	// Initialize logger
	log, err := logger.New(c.Environment, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error while initializing logger: %w", err)
	}

	stateDir, err := stateDir(c.StateDir)
	if err != nil {
		return nil, fmt.Errorf("error while resolving state dir: %w", err)
	}

	// Layered session state: fast in-memory cache first, then the
	// session file, then the sqlite store with native expiry
	db, err := storage.OpenSQLite(filepath.Join(stateDir, "state.db"), log)
	if err != nil {
		return nil, fmt.Errorf("error while opening state db: %w", err)
	}
	store := storage.NewComposite(
		storage.NewMemory(),
		storage.NewFile(filepath.Join(stateDir, "session.json"), log),
		db,
	)

	sessions := session.NewStore(store)
	services := service.New(service.Config{
		Endpoint:     c.Endpoint,
		AuthEndpoint: c.AuthEndpoint,
		ClientID:     c.ClientID,
		Logger:       log,
	}, sessions)

	queue := alerts.NewQueue()

	return &App{
		Config:     c,
		Logger:     log,
		Sessions:   sessions,
		Services:   services,
		Authorizer: auth.NewAuthorizer(services.Auth, sessions, log),
		Alerts:     queue,
		db:         db,
	}, nil
}

func (a *App) Close() error {
	a.Alerts.Stop()
	return a.db.Close()
}

func stateDir(configured string) (string, error) {
	dir := configured
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, "cookbook")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
