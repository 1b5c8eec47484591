// Remote action gateway for the Sound Whiskers backend API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/soundwhiskers/swx/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.soundwhiskers.app"

// proPlanCode is the denial code the backend attaches to 403 responses for
// premium-only endpoints.
const proPlanCode = "PRO_PLAN_REQUIRED"

// Client performs authenticated HTTP requests against the backend.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a backend client. The base URL defaults to the hosted
// service and the HTTP client to [http.DefaultClient].
func NewClient(baseURL, accessToken string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  httpClient,
	}
}

// SetRateLimit installs a client-side limiter pacing requests to rps
// requests per second. A non-positive rps removes the limiter.
func (c *Client) SetRateLimit(rps float64) {
	if rps <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
}

// errorBody is the JSON shape of backend failure responses.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Do performs one request against the named endpoint and classifies the
// outcome. A nil body sends no payload; a non-nil result is decoded from a
// 2xx response body.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.classify(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// classify maps a non-2xx response onto the closed failure set.
func (c *Client) classify(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var detail errorBody
	_ = json.Unmarshal(raw, &detail)

	switch {
	case resp.StatusCode == http.StatusForbidden && detail.Code == proPlanCode:
		return shared.ErrProPlanRequired
	case resp.StatusCode == http.StatusTooManyRequests:
		return shared.ErrQuotaExceeded
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", shared.ErrPlaylistNotFound, resp.StatusCode)
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: status %d", shared.ErrNotAuthenticated, resp.StatusCode)
	}

	if detail.Message != "" {
		return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, detail.Message)
	}
	return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
}
