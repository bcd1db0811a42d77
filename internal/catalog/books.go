package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"commune/internal/entity"
	"commune/pkg/logger"
)

// BooksClient looks books up by ISBN against the Korean National Library
// catalog.
type BooksClient struct {
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
	baseURL    string
}

func NewBooksClient(apiKey string, log *logger.Logger) *BooksClient {
	return &BooksClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
		baseURL:    "https://www.nl.go.kr",
	}
}

func (c *BooksClient) Configured() bool {
	return c.apiKey != ""
}

func (c *BooksClient) SearchByISBN(ctx context.Context, isbn string) (json.RawMessage, error) {
	searchURL := fmt.Sprintf(
		"%s/seoji/SearchApi.do?cert_key=%s&result_style=json&page_no=1&page_size=1&isbn=%s",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(isbn))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: book search: %v", entity.ErrUpstreamUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: book search: %v", entity.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: book search: %v", entity.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: book search returned %d", entity.ErrUpstreamUnavailable, resp.StatusCode)
	}

	return json.RawMessage(body), nil
}
