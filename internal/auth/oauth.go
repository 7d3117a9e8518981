package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

const (
	StateCookieName   = "oauth_state"
	LoginMethodOAuth  = "oauth"
	LoginMethodLocal  = "password"
	maxUserInfoLength = 1 << 20
)

var ErrOAuthDisabled = errors.New("oauth provider not configured")

// Profile is the identity returned by the provider's userinfo endpoint.
type Profile struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type OAuthProvider struct {
	cfg         *oauth2.Config
	userInfoURL string
}

func NewOAuthProvider(c config.OAuthConfig) *OAuthProvider {
	if !c.Enabled() {
		return nil
	}

	return &OAuthProvider{
		cfg: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectURL,
			Scopes:       c.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  c.AuthURL,
				TokenURL: c.TokenURL,
			},
		},
		userInfoURL: c.UserInfoURL,
	}
}

// LoginURL returns the provider redirect and the state to remember.
func (p *OAuthProvider) LoginURL() (string, string) {
	state := uuid.NewString()
	return p.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline), state
}

// Exchange trades the authorization code for a token and fetches the
// user's profile with it.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	tok, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	client := p.cfg.Client(ctx, tok)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch userinfo: status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxUserInfoLength)).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if profile.Subject == "" {
		return nil, errors.New("userinfo without subject")
	}

	return &profile, nil
}
