// Package forecastapi is the client for the air-quality prediction backend.
package forecastapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"airdash/internal/metrics"
	"airdash/internal/types"
)

// Sample requests:
// - http://localhost:8000/api/v1/forecast/current/new-delhi
// - http://localhost:8000/api/v1/forecast/24h/new-delhi
// - http://localhost:8000/api/v1/forecast/history/new-delhi?days=7
// - http://localhost:8000/api/v1/alerts
const (
	defaultBaseURL = "http://localhost:8000"
)

// APIError is a non-2xx response from the backend
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the request may succeed if repeated. 5xx and 429
// are retryable; other 4xx indicate a caller problem.
func (e *APIError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

// GetCurrent fetches the current AQI snapshot for a location slug
func (c *Client) GetCurrent(ctx context.Context, location string) (*types.CurrentAQI, error) {
	var apiResp CurrentAPIResponse
	if err := c.getJSON(ctx, "/api/v1/forecast/current/"+url.PathEscape(location), nil, &apiResp); err != nil {
		return nil, err
	}
	return apiResp.ToCurrentAQI(), nil
}

// GetForecast24h fetches the 24-hour hourly forecast for a location slug
func (c *Client) GetForecast24h(ctx context.Context, location string) ([]types.ForecastRow, error) {
	var apiResp ForecastAPIResponse
	if err := c.getJSON(ctx, "/api/v1/forecast/24h/"+url.PathEscape(location), nil, &apiResp); err != nil {
		return nil, err
	}
	return apiResp.ToRows(), nil
}

// GetHistory fetches historical hourly rows for the past number of days
func (c *Client) GetHistory(ctx context.Context, location string, days int) ([]types.ForecastRow, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))

	var apiResp ForecastAPIResponse
	if err := c.getJSON(ctx, "/api/v1/forecast/history/"+url.PathEscape(location), q, &apiResp); err != nil {
		return nil, err
	}
	return apiResp.ToRows(), nil
}

// ListAlerts fetches all configured alerts
func (c *Client) ListAlerts(ctx context.Context) ([]types.Alert, error) {
	var apiResp AlertsAPIResponse
	if err := c.getJSON(ctx, "/api/v1/alerts", nil, &apiResp); err != nil {
		return nil, err
	}
	return apiResp.Alerts, nil
}

// CreateAlert registers a new alert and returns it with its assigned ID
func (c *Client) CreateAlert(ctx context.Context, alert types.Alert) (*types.Alert, error) {
	var created types.Alert
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/alerts", alert, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAlert replaces an existing alert
func (c *Client) UpdateAlert(ctx context.Context, id string, alert types.Alert) (*types.Alert, error) {
	var updated types.Alert
	if err := c.doJSON(ctx, http.MethodPut, "/api/v1/alerts/"+url.PathEscape(id), alert, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAlert removes an alert
func (c *Client) DeleteAlert(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/v1/alerts/"+url.PathEscape(id), nil, nil)
}

// Ping checks backend reachability. Used by the online-status probe.
func (c *Client) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "/api/v1/health", nil, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	return c.send(req, path, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, path, out)
}

func (c *Client) send(req *http.Request, path string, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ObserveBackendRequest(path, statusLabel(resp, err), time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func statusLabel(resp *http.Response, err error) string {
	if err != nil {
		return "error"
	}
	return strconv.Itoa(resp.StatusCode)
}
