package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// CredentialSource supplies the current bearer credential, or "" when the
// session is unauthenticated.
type CredentialSource func() string

// Client is a typed client for the remote second-brain API. All methods take a
// context and return either decoded data or an error carrying the server's
// message.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	creds   CredentialSource
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		creds:   func() string { return "" },
	}
}

// SetCredentialSource wires the session's credential into outgoing requests.
// Breaks the construction cycle between client and session store.
func (c *Client) SetCredentialSource(src CredentialSource) {
	if src != nil {
		c.creds = src
	}
}

// APIError is a non-success response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api: request failed with status %d", e.Status)
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// envelope is the response wrapper the API uses for data endpoints. Success is
// a pointer because some endpoints omit it and signal purely via status code.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred := c.creds(); cred != "" {
		req.Header.Set("Authorization", "Bearer "+cred)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: read response: %w", err)
	}
	c.logger.Debug("request done",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: serverMessage(raw)}
	}
	return raw, nil
}

// do issues a request and decodes the standard envelope, unmarshalling the
// data payload into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return fmt.Errorf("api: decode response: %w", err)
		}
	}
	if env.Success != nil && !*env.Success {
		return &APIError{Status: http.StatusOK, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("api: decode data: %w", err)
		}
	}
	return nil
}

func serverMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return env.Message
}
