package stubhub

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/donaldgifford/stubhub/internal/metrics"
)

const (
	loginPath = "/login"

	// UserGUIDHeader carries the seller's user id on login responses.
	UserGUIDHeader = "X-StubHub-User-GUID"
)

// Credentials are the seller credentials for Login. Username and Password
// take precedence over RefreshToken when both are set.
type Credentials struct {
	Username     string
	Password     string
	RefreshToken string
}

func (cr Credentials) form() (url.Values, error) {
	switch {
	case cr.Username != "" && cr.Password != "":
		return url.Values{
			"grant_type": {"password"},
			"username":   {cr.Username},
			"password":   {cr.Password},
		}, nil
	case cr.RefreshToken != "":
		return url.Values{
			"grant_type":    {"refresh_token"},
			"refresh_token": {cr.RefreshToken},
		}, nil
	default:
		return nil, ErrInvalidCredentials
	}
}

type loginResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	ExpiresIn    flexInt `json:"expires_in"`
	TokenType    string  `json:"token_type"`
}

// Login exchanges seller credentials for an access token using the
// application's consumer key and secret.
//
// Any access token already held is cleared before the request is sent, so
// a failed re-login leaves the client unauthenticated. A non-200 answer
// returns false with a nil error and applies nothing from the response;
// only malformed input or transport failures return an error.
func (c *Client) Login(ctx context.Context, creds Credentials) (bool, error) {
	form, err := creds.form()
	if err != nil {
		return false, err
	}

	c.clearAccessToken()

	var resp loginResponse
	header, err := c.post(ctx, loginPath, ContentTypeForm, form, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			c.log.Warn("stubhub login rejected", "status", apiErr.StatusCode)
			return false, nil
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("logging in: %w", err)
	}

	c.mu.Lock()
	c.session = Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    int64(resp.ExpiresIn),
		UserID:       header.Get(UserGUIDHeader),
		IssuedAt:     c.nowFunc(),
	}
	c.mu.Unlock()

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.log.Info("stubhub login succeeded", "user_id", header.Get(UserGUIDHeader))
	return true, nil
}
