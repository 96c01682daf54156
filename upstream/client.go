// File: upstream/client.go
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"taskweave/config"
	"taskweave/models"
)

// HTTPClient is the default API implementation backed by net/http.
type HTTPClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewHTTPClient builds a client from AppConfig.
func NewHTTPClient() *HTTPClient {
	timeout := time.Duration(config.AppConfig.UpstreamTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		BaseURL: strings.TrimRight(config.AppConfig.UpstreamAPIURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// doJSON issues one JSON request and decodes the response body into out (when
// out is non-nil). Non-2xx statuses are returned as *APIError with the body's
// error or message field when present.
func (c *HTTPClient) doJSON(ctx context.Context, sess models.Session, method, path string, body, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode upstream response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// errorMessage pulls the error or message field out of an error body, falling
// back to the raw payload.
func errorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(data))
}
