package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jathow/careertrack/internal/metrics"
	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenStore holds the bearer token in persistent storage under the portal's
// fixed key. The server remains authoritative over sessions; the client only
// mirrors the token locally.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Navigator exposes the current page path to the 401 policy and receives
// forced navigation to the login page.
type Navigator interface {
	CurrentPath() string
	NavigateTo(path string)
}

type Client struct {
	httpClient  HTTPClient
	baseURL     string
	tokens      TokenStore
	navigator   Navigator
	rateLimiter *rate.Limiter
}

func NewClient(baseURL string, tokens TokenStore, navigator Navigator) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		navigator:  navigator,
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) sendRequest(ctx context.Context, method string, path string, payload any) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error encoding request body: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token, err := c.tokens.Token(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RequestDuration.WithLabelValues(resourceOf(path)).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(req, resp)
}

func (c *Client) handleResponse(req *http.Request, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The policy side effects must run before the error reaches callers.
		c.handleUnauthorized(req)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: messageFrom(body, "session expired")}
	}

	if resp.StatusCode >= 400 {
		fallback := fmt.Sprintf("request failed with status %v", resp.StatusCode)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: messageFrom(body, fallback)}
	}

	return body, nil
}

func resourceOf(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(trimmed, "/?"); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
