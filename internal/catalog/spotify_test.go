package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"commune/internal/entity"
	"commune/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newTestSpotifyClient(accountsURL, apiURL string) *SpotifyClient {
	c := NewSpotifyClient("id", "secret", logger.New())
	c.accountsURL = accountsURL
	c.apiURL = apiURL
	return c
}

func TestSpotifyAccessToken_Memoized(t *testing.T) {
	var tokenCalls int32
	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenCalls, 1)
		assert.Equal(t, "/api/token", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-1","expires_in":3600}`))
	}))
	defer accounts.Close()

	client := newTestSpotifyClient(accounts.URL, "")

	token, err := client.accessToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	// Second call must hit the memo, not the server
	token, err = client.accessToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestSpotifyAccessToken_RefreshesWhenExpired(t *testing.T) {
	var tokenCalls int32
	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenCalls, 1)
		w.Write([]byte(`{"access_token":"tok-fresh","expires_in":3600}`))
	}))
	defer accounts.Close()

	client := newTestSpotifyClient(accounts.URL, "")
	client.token = "tok-stale"
	client.tokenExpiry = time.Now().Add(-time.Minute)

	token, err := client.accessToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "tok-fresh", token)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestSpotifyAccessToken_UpstreamFailure(t *testing.T) {
	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer accounts.Close()

	client := newTestSpotifyClient(accounts.URL, "")

	_, err := client.accessToken(context.Background())
	assert.ErrorIs(t, err, entity.ErrUpstreamUnavailable)
}

func TestSpotifySearch_ProxiesBody(t *testing.T) {
	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"tok-1","expires_in":3600}`))
	}))
	defer accounts.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "pink white", r.URL.Query().Get("q"))
		w.Write([]byte(`{"tracks":{"items":[]}}`))
	}))
	defer api.Close()

	client := newTestSpotifyClient(accounts.URL, api.URL)

	body, err := client.Search(context.Background(), "pink white")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"tracks":{"items":[]}}`, string(body))
}

func TestSpotifyConfigured(t *testing.T) {
	assert.True(t, NewSpotifyClient("id", "secret", logger.New()).Configured())
	assert.False(t, NewSpotifyClient("", "", logger.New()).Configured())
}
