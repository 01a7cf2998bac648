// Package auth holds the identity provider client and the authorizer
// that owns user state for the application lifetime.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nkiryanov/cookbook/internal/api"
	"github.com/nkiryanov/cookbook/internal/logger"
	"github.com/nkiryanov/cookbook/internal/models"
	"github.com/nkiryanov/cookbook/internal/session"
)

type Config struct {
	// Endpoint is the identity provider base URL
	Endpoint string

	// ClientID identifies this application to the provider
	ClientID string

	// HTTPClient defaults to a plain http.Client
	HTTPClient *http.Client

	Logger logger.Logger
}

// Service talks to the OAuth2 style identity provider: profile lookups
// plus the hosted login/logout URL builders.
type Service struct {
	endpoint string
	clientID string
	sessions *session.Store
	client   *http.Client
	logger   logger.Logger
}

func NewService(cfg Config, sessions *session.Store) *Service {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NewNoOp()
	}

	return &Service{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		clientID: cfg.ClientID,
		sessions: sessions,
		client:   httpClient,
		logger:   log,
	}
}

// UserInfo fetches the profile of the current access token's user.
func (s *Service) UserInfo(ctx context.Context) (models.UserInfo, error) {
	var info models.UserInfo

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"/oauth2/userInfo", nil)
	if err != nil {
		return info, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.sessions.AccessToken())

	resp, err := s.client.Do(req)
	if err != nil {
		return info, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("User info request failed", "status_code", resp.StatusCode)
		return info, &api.StatusError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return info, fmt.Errorf("failed to decode response: %w", err)
	}
	return info, nil
}

// LoginEndpoint builds the hosted authorize URL for the implicit flow.
// The optional from path rides along as state and becomes the post
// login redirect.
func (s *Service) LoginEndpoint(currentHost string, from string) string {
	params := []string{
		"response_type=token",
		"client_id=" + url.QueryEscape(s.clientID),
		"redirect_uri=" + url.QueryEscape(currentHost+"/login"),
	}
	if from != "" {
		params = append(params, "state="+url.QueryEscape(from))
	}
	return s.endpoint + "/oauth2/authorize?" + strings.Join(params, "&")
}

// LogoutEndpoint builds the hosted logout URL.
func (s *Service) LogoutEndpoint(currentHost string) string {
	params := []string{
		"client_id=" + url.QueryEscape(s.clientID),
		"logout_uri=" + url.QueryEscape(currentHost+"/logout"),
	}
	return s.endpoint + "/logout?" + strings.Join(params, "&")
}
