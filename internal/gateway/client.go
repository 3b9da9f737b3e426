// Package gateway wraps every call to the store-owned REST API behind a
// single authenticated client with a small, predictable error taxonomy.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// requestTimeout is fixed by contract: upstream calls fail after 10 seconds
// of no response and the value is not configurable at the call site.
const requestTimeout = 10 * time.Second

// Credentials supplies the bearer token attached to every upstream call.
// Token returns an empty string when the caller is not authenticated.
type Credentials interface {
	Token(ctx context.Context) string
}

// Client issues GET/POST/DELETE requests against the upstream REST API.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
}

// NewClient constructs a new client for the given upstream base URL.
func NewClient(baseURL string, creds Credentials) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Get fetches an entity. A 404 status or an entity-less payload resolves to
// found=false with a nil error: callers treat "not found" as a normal data
// outcome, never as a failure.
func (c *Client) Get(ctx context.Context, path string, out any) (bool, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, classify(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode >= 400 {
		return false, statusError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, classify(err)
	}
	if emptyPayload(raw) {
		return false, nil
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return false, nil
		}
	}
	return true, nil
}

// Post sends a JSON body and decodes the response entity into out when
// out is non-nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classify(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return statusError(resp)
	}
	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return classify(err)
		}
		if !emptyPayload(raw) {
			return json.Unmarshal(raw, out)
		}
	}
	return nil
}

// Delete removes an entity.
func (c *Client) Delete(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classify(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return statusError(resp)
	}
	return nil
}

// Download streams a file-type resource. Unlike the JSON operations, a
// missing token is a hard precondition failure here: the caller must
// re-authenticate before retrying.
func (c *Client) Download(ctx context.Context, path string) (io.ReadCloser, string, error) {
	if c.creds == nil || c.creds.Token(ctx) == "" {
		return nil, "", ErrNoCredentials
	}
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", classify(err)
	}
	if resp.StatusCode >= 400 {
		defer func() {
			_ = resp.Body.Close()
		}()
		return nil, "", statusError(resp)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.creds != nil {
		if token := c.creds.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// classify converts transport-level failures into the gateway taxonomy.
func classify(err error) error {
	msg := "no response from upstream"
	reason := ReasonNetwork

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		reason = ReasonTimeout
		msg = fmt.Sprintf("upstream did not respond within %s", requestTimeout)
	} else if errors.Is(err, context.DeadlineExceeded) {
		reason = ReasonTimeout
		msg = fmt.Sprintf("upstream did not respond within %s", requestTimeout)
	}
	return &GatewayError{Reason: reason, Message: msg}
}

func statusError(resp *http.Response) error {
	return &GatewayError{Status: resp.StatusCode, Message: serverMessage(resp)}
}

// serverMessage extracts a human-readable message from an error payload.
func serverMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return http.StatusText(resp.StatusCode)
	}
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch {
		case payload.Message != "":
			return payload.Message
		case payload.Detail != "":
			return payload.Detail
		case payload.Error != "":
			return payload.Error
		}
	}
	text := strings.TrimSpace(string(raw))
	if text == "" || strings.HasPrefix(text, "<") {
		return http.StatusText(resp.StatusCode)
	}
	return text
}

// emptyPayload reports whether the body carries no usable entity.
func emptyPayload(raw []byte) bool {
	trimmed := strings.TrimSpace(string(raw))
	switch trimmed {
	case "", "null", "{}":
		return true
	}
	return false
}
