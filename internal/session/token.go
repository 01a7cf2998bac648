package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Fallback lifetime when the provider reports no usable expiry
const defaultExpiresIn = 15 * time.Minute

// ClientToken is the parsed identity provider redirect. It is consumed
// once to populate the session store and then discarded.
type ClientToken struct {
	AccessToken  string
	SessionToken string
	ExpiresIn    int    // seconds
	Redirect     string // post-login path, "/" when the provider sent no state
}

// ParseTokenFragment extracts a client token from an OAuth implicit
// flow redirect fragment ("#access_token=..&id_token=..&..."). A
// fragment without access_token is not a login callback: ok is false
// and no error is raised.
func ParseTokenFragment(fragment string) (ClientToken, bool) {
	response := map[string]string{}
	for _, element := range strings.Split(strings.TrimPrefix(fragment, "#"), "&") {
		parts := strings.SplitN(element, "=", 2)
		if len(parts) == 2 {
			response[parts[0]] = parts[1]
		}
	}

	access := response["access_token"]
	if access == "" {
		return ClientToken{}, false
	}

	redirect := response["state"]
	if redirect == "" {
		redirect = "/"
	}

	return ClientToken{
		AccessToken:  access,
		SessionToken: response["id_token"],
		Redirect:     redirect,
		ExpiresIn:    expiresIn(response["expires_in"], access),
	}, true
}

// expiresIn parses the provider's expires_in seconds. When absent or
// unparsable it falls back to the exp claim of the access token, then
// to a fixed default.
func expiresIn(raw string, accessToken string) int {
	if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
		return seconds
	}

	var claims jwt.RegisteredClaims
	_, _ = jwt.ParseWithClaims(accessToken, &claims,
		func(*jwt.Token) (any, error) { return nil, nil },
		jwt.WithoutClaimsValidation(),
	)
	if claims.ExpiresAt != nil {
		if until := time.Until(claims.ExpiresAt.Time); until > 0 {
			return int(until / time.Second)
		}
	}

	return int(defaultExpiresIn / time.Second)
}
