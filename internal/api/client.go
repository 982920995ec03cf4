// Package api is the typed HTTP client for the locker-rental service.
// One method per server endpoint; every request attaches the persisted
// bearer token when present, and any 401 response clears the session as
// a side effect regardless of which call triggered it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"locker-rental/internal/dto/response"

	"go.uber.org/zap"
)

// Sessions is the credential surface the client needs: read the token
// before each request, clear it on authentication expiry.
type Sessions interface {
	Token() string
	Clear()
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   Sessions
	log        *zap.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func NewClient(baseURL string, sessions Sessions, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		sessions:   sessions,
		log:        log.With(zap.String("component", "api_client")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one request/response cycle: marshal body, attach bearer,
// send, unwrap the response envelope into out, classify failures.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: ErrValidation, Message: "invalid request body", Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &APIError{Kind: ErrNetwork, Message: "failed to build request", Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("Request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &APIError{Kind: ErrNetwork, Message: "network error, check your connection", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: ErrNetwork, Message: "failed to read response", Err: err}
	}

	var envelope response.Envelope
	// Envelope decode failures are tolerated: classification below only
	// needs the status code, and the raw body still yields a message.
	_ = json.Unmarshal(raw, &envelope)

	if resp.StatusCode == http.StatusUnauthorized {
		// Session invalidation is global: whichever call hit the 401,
		// the persisted token and cached user are gone.
		c.log.Info("Session expired, clearing credentials",
			zap.String("method", method), zap.String("path", path))
		c.sessions.Clear()
		return &APIError{
			Kind:    ErrAuth,
			Status:  resp.StatusCode,
			Message: messageOr(envelope.Message, "session expired, please log in again"),
		}
	}

	if resp.StatusCode >= 500 {
		return &APIError{
			Kind:    ErrServer,
			Status:  resp.StatusCode,
			Message: messageOr(envelope.Message, "server error, try again later"),
		}
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			Kind:    ErrValidation,
			Status:  resp.StatusCode,
			Message: messageOr(envelope.Message, fmt.Sprintf("request rejected (status %d)", resp.StatusCode)),
			Fields:  fieldErrors(envelope.Errors),
		}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &APIError{Kind: ErrServer, Status: resp.StatusCode, Message: "malformed response payload", Err: err}
		}
	}
	return nil
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

func fieldErrors(errs any) map[string]string {
	m, ok := errs.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
