// Package googleauth manages the Google OAuth session for the planner. The
// user token is cached on disk so the backend can rebuild a token source
// across restarts without re-running the consent flow.
package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peterbourgon/diskv/v3"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// ErrNoToken is returned when no cached token exists and the consent flow
// has to be run first.
var ErrNoToken = errors.New("googleauth: no cached token, run the auth flow first")

const tokenKey = "google-oauth-token"

// Provider owns the OAuth config and the cached user token.
type Provider struct {
	config *oauth2.Config
	cache  *diskv.Diskv
}

// NewProvider builds a Provider from OAuth client credentials JSON (the
// Desktop App type downloaded from the Google console) and a cache
// directory for the token.
func NewProvider(credentialsJSON []byte, cacheDir string) (*Provider, error) {
	config, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("googleauth: failed to parse credentials: %w", err)
	}
	return NewProviderFromConfig(config, cacheDir), nil
}

// NewProviderFromConfig builds a Provider from an explicit OAuth config.
func NewProviderFromConfig(config *oauth2.Config, cacheDir string) *Provider {
	return &Provider{
		config: config,
		cache: diskv.New(diskv.Options{
			BasePath:     cacheDir,
			CacheSizeMax: 64 * 1024,
		}),
	}
}

// AuthURL returns the consent URL the user must visit. Offline access is
// requested so a refresh token is issued.
func (p *Provider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token and caches it.
func (p *Provider) Exchange(ctx context.Context, code string) error {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("googleauth: failed to exchange authorization code: %w", err)
	}
	return p.saveToken(tok)
}

// HasSession reports whether a cached token exists.
func (p *Provider) HasSession() bool {
	return p.cache.Has(tokenKey)
}

// EnsureSession returns a self-refreshing token source built from the
// cached token. Refreshed tokens are written back to the cache so the
// refresh survives restarts.
func (p *Provider) EnsureSession(ctx context.Context) (oauth2.TokenSource, error) {
	tok, err := p.loadToken()
	if err != nil {
		return nil, err
	}
	return &persistingTokenSource{
		provider: p,
		source:   p.config.TokenSource(ctx, tok),
		last:     tok,
	}, nil
}

// SignOut drops the cached token.
func (p *Provider) SignOut() error {
	if !p.cache.Has(tokenKey) {
		return nil
	}
	if err := p.cache.Erase(tokenKey); err != nil {
		return fmt.Errorf("googleauth: failed to erase token: %w", err)
	}
	return nil
}

func (p *Provider) loadToken() (*oauth2.Token, error) {
	data, err := p.cache.Read(tokenKey)
	if err != nil {
		return nil, ErrNoToken
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("googleauth: corrupt cached token: %w", err)
	}
	return &tok, nil
}

func (p *Provider) saveToken(tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("googleauth: failed to marshal token: %w", err)
	}
	if err := p.cache.Write(tokenKey, data); err != nil {
		return fmt.Errorf("googleauth: failed to cache token: %w", err)
	}
	return nil
}

// persistingTokenSource writes tokens back to the cache whenever the
// underlying source refreshes them.
type persistingTokenSource struct {
	provider *Provider
	source   oauth2.TokenSource
	last     *oauth2.Token
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.source.Token()
	if err != nil {
		return nil, err
	}
	if s.last == nil || tok.AccessToken != s.last.AccessToken {
		s.last = tok
		if saveErr := s.provider.saveToken(tok); saveErr != nil {
			return nil, saveErr
		}
	}
	return tok, nil
}
