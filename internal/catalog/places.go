package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"commune/internal/entity"
	"commune/pkg/logger"
)

const placesFieldMask = "places.id,places.displayName,places.formattedAddress,places.location,places.rating,places.userRatingCount,places.types,places.googleMapsUri"

// PlacesClient fronts the Google Places (New) text search and
// autocomplete endpoints.
type PlacesClient struct {
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
	baseURL    string
}

func NewPlacesClient(apiKey string, log *logger.Logger) *PlacesClient {
	return &PlacesClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
		baseURL:    "https://places.googleapis.com",
	}
}

func (c *PlacesClient) Configured() bool {
	return c.apiKey != ""
}

func (c *PlacesClient) Search(ctx context.Context, query string) (json.RawMessage, error) {
	payload, _ := json.Marshal(map[string]interface{}{
		"textQuery": query,
		"pageSize":  6,
	})
	return c.post(ctx, "/v1/places:searchText", placesFieldMask, payload)
}

func (c *PlacesClient) Autocomplete(ctx context.Context, input string) (json.RawMessage, error) {
	payload, _ := json.Marshal(map[string]interface{}{
		"input": input,
	})
	return c.post(ctx, "/v1/places:autocomplete", "", payload)
}

func (c *PlacesClient) post(ctx context.Context, path, fieldMask string, payload []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: places: %v", entity.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	if fieldMask != "" {
		req.Header.Set("X-Goog-FieldMask", fieldMask)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: places: %v", entity.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: places: %v", entity.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Places API error: %d %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: places returned %d", entity.ErrUpstreamUnavailable, resp.StatusCode)
	}

	return json.RawMessage(body), nil
}
