package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

// Client is the HTTP client for the portfolio backend. It holds no
// session state: admin methods take the bearer token per call and
// nothing is cached between requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client. baseURL includes the API
// prefix, e.g. http://localhost:5000/api.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// doJSON executes a request with an optional JSON body. token may be
// empty for public endpoints.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}
	return c.do(ctx, method, path, token, bodyReader, "application/json", result)
}

// doMultipart executes a request with a prebuilt multipart body. The
// content type carries the writer's boundary and must never be
// replaced with application/json.
func (c *Client) doMultipart(ctx context.Context, method, path, token string, body io.Reader, contentType string, result any) error {
	return c.do(ctx, method, path, token, body, contentType, result)
}

// do is the single choke point every request goes through: it builds
// the request, attaches the token, sends, and classifies the outcome.
// Non-2xx statuses become *api.Error; transport and decode failures
// stay plain wrapped errors so callers can tell them apart.
func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyError(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		if v, ok := result.(validation.Validatable); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("response failed contract check: %w", err)
			}
		}
	}

	return nil
}

// classifyError turns a non-2xx response into *api.Error, keeping the
// backend's message and field errors when the body parses.
func classifyError(status int, body []byte) error {
	apiErr := &api.Error{
		StatusCode: status,
		Message:    api.DefaultErrorMessage,
	}
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			apiErr.Message = errResp.Message
		}
		apiErr.Errors = errResp.Errors
	}
	return apiErr
}
