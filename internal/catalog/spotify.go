// Package catalog fronts the external media catalogs the feed consumes.
// Every client here is a thin proxy: failures surface as
// entity.ErrUpstreamUnavailable, never as a crash.
package catalog

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"commune/internal/entity"
	"commune/pkg/logger"
)

const tokenExpirySlack = 120 * time.Second

type SpotifyClient struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *logger.Logger

	accountsURL string
	apiURL      string

	// Token memo. The mutex only protects the fields; two requests
	// hitting an expired token may both refresh, which is harmless.
	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewSpotifyClient(clientID, clientSecret string, log *logger.Logger) *SpotifyClient {
	return &SpotifyClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       log,
		accountsURL:  "https://accounts.spotify.com",
		apiURL:       "https://api.spotify.com",
	}
}

func (c *SpotifyClient) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// Search proxies the Spotify track search and returns the upstream JSON
// verbatim.
func (c *SpotifyClient) Search(ctx context.Context, query string) (json.RawMessage, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	searchURL := fmt.Sprintf("%s/v1/search?q=%s&type=track&limit=8&market=US", c.apiURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: spotify search: %v", entity.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: spotify search: %v", entity.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: spotify search: %v", entity.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: spotify search returned %d", entity.ErrUpstreamUnavailable, resp.StatusCode)
	}

	return json.RawMessage(body), nil
}

// accessToken returns the memoized client-credentials token, refreshing
// it when past its expiry (minus slack).
func (c *SpotifyClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.accountsURL+"/api/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("%w: spotify token: %v", entity.ErrUpstreamUnavailable, err)
	}
	cred := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+cred)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: spotify token: %v", entity.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: spotify token returned %d", entity.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: spotify token: %v", entity.ErrUpstreamUnavailable, err)
	}

	c.mu.Lock()
	c.token = payload.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - tokenExpirySlack)
	c.mu.Unlock()

	return payload.AccessToken, nil
}
