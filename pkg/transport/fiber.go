package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	fiberClient "github.com/gofiber/fiber/v3/client"
)

/*
Fiber is an HTTP transport on gofiber's fasthttp-backed client, for
integrators already carrying fiber and wanting to reuse its connection
pooling.
*/
type Fiber struct {
	path string
	conn *fiberClient.Client
}

type FiberOption func(*Fiber)

// WithPath changes the endpoint path, "/rpc" by default.
func WithPath(path string) FiberOption {
	return func(t *Fiber) {
		t.path = path
	}
}

// NewFiber creates a Fiber transport posting to baseURL.
func NewFiber(baseURL string, opts ...FiberOption) *Fiber {
	t := &Fiber{
		path: "/rpc",
		conn: fiberClient.New().SetBaseURL(baseURL),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// SendMessage implements client.Transport.
func (t *Fiber) SendMessage(ctx context.Context, request []byte) ([]byte, error) {
	res, err := t.conn.Post(
		t.path,
		fiberClient.Config{
			Ctx: ctx,
			Header: map[string]string{
				"Content-Type": "application/json",
				"Accept":       "application/json",
			},
			Body: json.RawMessage(request),
		},
	)

	if err != nil {
		return nil, err
	}

	if res.StatusCode() < http.StatusOK || res.StatusCode() >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected HTTP status %d from %s", res.StatusCode(), t.path)
	}

	if res.StatusCode() == http.StatusNoContent {
		return nil, nil
	}

	return res.Body(), nil
}
