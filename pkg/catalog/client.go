package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrFetchFailed covers every way the catalog retrieval can fail: transport
// errors, non-2xx statuses, and malformed bodies. Callers have no recovery
// path that depends on the distinction, so none is exposed.
var ErrFetchFailed = errors.New("question catalog fetch failed")

// Client retrieves the question catalog from the backend. The bearer token
// is an explicit constructor parameter, never read from ambient state.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a catalog client. httpClient may be nil, in which case
// http.DefaultClient is used.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

// Fetch issues one GET /api/questions and parses the response. The context
// aborts the request if the hosting session is torn down mid-flight.
func (c *Client) Fetch(ctx context.Context) (*Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/questions", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var catalog Catalog
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return &catalog, nil
}
