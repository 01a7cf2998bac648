package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("set default option", func(t *testing.T) {
		c := NewConfig()

		require.Equal(t, "http://localhost:8080", c.Endpoint, "default endpoint not set")
		require.Equal(t, "http://localhost:8080", c.AuthEndpoint, "default auth endpoint not set")
		require.Equal(t, "cookbook", c.ClientID, "default client id not set")
		require.Equal(t, "http://localhost:3000", c.Host, "default host not set")
		require.Equal(t, "info", c.LogLevel, "default log level not set")
		require.Equal(t, "prod", c.Environment, "default environment not set")
		require.Equal(t, "", c.StateDir, "state dir should be empty by default")
	})

	t.Run("load env", func(t *testing.T) {
		c := NewConfig()
		getenv := func(key string) string {
			switch key {
			case "API_ENDPOINT":
				return "https://api.example.com"
			case "AUTH_ENDPOINT":
				return "https://auth.example.com"
			case "CLIENT_ID":
				return "client-id"
			case "HOST":
				return "https://app.example.com"
			case "STATE_DIR":
				return "/tmp/cookbook"
			case "LOG_LEVEL":
				return "debug"
			default:
				return ""
			}
		}

		c.LoadEnv(getenv)

		require.Equal(t, "https://api.example.com", c.Endpoint)
		require.Equal(t, "https://auth.example.com", c.AuthEndpoint)
		require.Equal(t, "client-id", c.ClientID)
		require.Equal(t, "https://app.example.com", c.Host)
		require.Equal(t, "/tmp/cookbook", c.StateDir)
		require.Equal(t, "debug", c.LogLevel)
		require.Equal(t, "prod", c.Environment, "unset env var must not override the default")
	})

	t.Run("parse flags", func(t *testing.T) {
		t.Run("valid flags", func(t *testing.T) {
			tests := []struct {
				name  string
				flags []string
			}{
				{
					name: "short",
					flags: []string{
						"-a", "https://api.example.com",
						"-u", "https://auth.example.com",
						"-c", "client-id",
						"-l", "debug",
						"whoami",
					},
				},
				{
					name: "long",
					flags: []string{
						"--endpoint", "https://api.example.com",
						"--auth-endpoint", "https://auth.example.com",
						"--client-id", "client-id",
						"--log-level", "debug",
						"whoami",
					},
				},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					c := NewConfig()

					rest, err := c.ParseFlags(tt.flags)

					require.NoError(t, err, "correct flags must parse without error")
					require.Equal(t, "https://api.example.com", c.Endpoint)
					require.Equal(t, "https://auth.example.com", c.AuthEndpoint)
					require.Equal(t, "client-id", c.ClientID)
					require.Equal(t, "debug", c.LogLevel)
					require.Equal(t, []string{"whoami"}, rest, "subcommand args must be left over")
				})
			}
		})

		t.Run("subcommand flags left alone", func(t *testing.T) {
			c := NewConfig()

			rest, err := c.ParseFlags([]string{"recipes", "list", "--limit", "5"})

			require.NoError(t, err)
			require.Equal(t, []string{"recipes", "list", "--limit", "5"}, rest, "flags after the command belong to the subcommand")
		})

		t.Run("invalid flags", func(t *testing.T) {
			c := NewConfig()

			_, err := c.ParseFlags([]string{
				"--invalid-flag", "value",
			})

			require.Error(t, err, "invalid flag should return an error")
		})
	})
}
