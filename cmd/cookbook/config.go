package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/nkiryanov/cookbook/internal/logger"
)

const (
	defaultEndpoint     = "http://localhost:8080"
	defaultAuthEndpoint = "http://localhost:8080"
	defaultClientID     = "cookbook"
	defaultHost         = "http://localhost:3000"
	defaultLoggingLevel = logger.LevelInfo
	defaultEnvironment  = logger.EnvProduction
)

type Config struct {
	// REST API base URL
	Endpoint string

	// Identity provider base URL
	AuthEndpoint string

	// OAuth2 client id of this application
	ClientID string

	// Host used to build login/logout redirect URIs
	Host string

	// Directory for the session state files; empty means the user
	// config directory
	StateDir string

	// Default logging level
	LogLevel string

	// Environment
	Environment string
}

func NewConfig() *Config {
	return &Config{
		Endpoint:     defaultEndpoint,
		AuthEndpoint: defaultAuthEndpoint,
		ClientID:     defaultClientID,
		Host:         defaultHost,
		LogLevel:     defaultLoggingLevel,
		Environment:  defaultEnvironment,
	}
}

// Load variable from '.env' file (should be located at working directory)
func (c *Config) LoadDotEnv(getwd func() (string, error)) error {
	wd, err := getwd()
	if err != nil {
		return err
	}

	envMap, err := godotenv.Read(filepath.Join(wd, ".env"))

	switch {
	case err == nil:
		c.LoadEnv(func(key string) string {
			return envMap[key]
		})
		return nil
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return err
	}
}

func (c *Config) LoadEnv(getenv func(string) string) {
	// Set option to value if it not empty
	setString := func(o *string) func(value string) {
		return func(value string) {
			if value != "" {
				*o = value
			}
		}
	}

	envMap := map[string]func(string){
		"API_ENDPOINT":  setString(&c.Endpoint),
		"AUTH_ENDPOINT": setString(&c.AuthEndpoint),
		"CLIENT_ID":     setString(&c.ClientID),
		"HOST":          setString(&c.Host),
		"STATE_DIR":     setString(&c.StateDir),
		"LOG_LEVEL":     setString(&c.LogLevel),
		"ENVIRONMENT":   setString(&c.Environment),
	}

	for key, parseFn := range envMap {
		parseFn(getenv(key))
	}
}

// ParseFlags parses the global flags and returns the remaining
// subcommand arguments untouched.
func (c *Config) ParseFlags(args []string) ([]string, error) {
	fs := pflag.NewFlagSet("cookbook", pflag.ContinueOnError)
	fs.SetInterspersed(false)

	fs.StringVarP(&c.Endpoint, "endpoint", "a", c.Endpoint, "REST API base URL")
	fs.StringVarP(&c.AuthEndpoint, "auth-endpoint", "u", c.AuthEndpoint, "Identity provider base URL")
	fs.StringVarP(&c.ClientID, "client-id", "c", c.ClientID, "OAuth2 client id")
	fs.StringVarP(&c.Host, "host", "H", c.Host, "Host for login/logout redirect URIs")
	fs.StringVarP(&c.StateDir, "state-dir", "d", c.StateDir, "Directory for session state files")
	fs.StringVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "Logging level (debug, info, warn, error)")
	fs.StringVarP(&c.Environment, "environment", "e", c.Environment, "Environment (dev, prod)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}
