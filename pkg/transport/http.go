package transport

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

/*
HTTP posts each serialized request to a single endpoint and returns the
raw reply body. A 204 No Content reply (common for notifications) comes
back as an empty body, which the client processes to nil.
*/
type HTTP struct {
	url     string
	client  *http.Client
	headers map[string]string
}

type HTTPOption func(*HTTP)

// WithHeader sets a custom request header on every call.
func WithHeader(key, value string) HTTPOption {
	return func(t *HTTP) {
		t.headers[key] = value
	}
}

// WithBasicAuth adds a Basic Authorization header to every call.
func WithBasicAuth(username, password string) HTTPOption {
	return func(t *HTTP) {
		t.headers["Authorization"] = "Basic " + base64.StdEncoding.EncodeToString(
			[]byte(username+":"+password),
		)
	}
}

// WithTimeout caps the total time of a single call.
func WithTimeout(d time.Duration) HTTPOption {
	return func(t *HTTP) {
		t.client.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client entirely.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(t *HTTP) {
		t.client = client
	}
}

// WithUnixSocket dials a unix socket instead of the endpoint's host.
// The url is still used for the request path.
func WithUnixSocket(path string) HTTPOption {
	return func(t *HTTP) {
		t.client.Transport = &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", path)
			},
		}
	}
}

// NewHTTP creates an HTTP transport for the given endpoint url.
func NewHTTP(url string, opts ...HTTPOption) *HTTP {
	t := &HTTP{
		url:    url,
		client: &http.Client{Timeout: 90 * time.Second},
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// SendMessage implements client.Transport.
func (t *HTTP) SendMessage(ctx context.Context, request []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, t.url, bytes.NewReader(request),
	)

	if err != nil {
		return nil, err
	}

	for key, value := range t.headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := t.client.Do(httpReq)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected HTTP status %d from %s", resp.StatusCode, t.url)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	return io.ReadAll(resp.Body)
}
