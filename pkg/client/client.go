package client

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/jsonrpc-go/pkg/errors"
	"github.com/theapemachine/jsonrpc-go/pkg/jsonrpc"
)

/*
Transport is the injected capability that moves a serialized request to
the remote peer and brings back the raw reply. The core makes no
assumption about the wire: HTTP, a socket, a pipe, anything that can
carry text. Transport errors are surfaced to the caller untouched.
*/
type Transport interface {
	SendMessage(ctx context.Context, request []byte) ([]byte, error)
}

/*
Client builds JSON-RPC 2.0 requests, hands them to its Transport and
reduces the raw replies to a result value or a typed error. Each call
blocks on the transport until a reply (or failure) is available;
cancellation and timeouts belong to the transport's context.
*/
type Client struct {
	transport Transport
	ids       jsonrpc.IDGenerator
	validator *jsonrpc.Validator
	validate  bool
	logger    *log.Logger
}

type Option func(*Client)

// WithIDGenerator replaces the default monotonic counter.
func WithIDGenerator(gen jsonrpc.IDGenerator) Option {
	return func(c *Client) {
		c.ids = gen
	}
}

// WithValidation toggles schema validation of requests and responses.
// Callers opting out accept malformed-object risk.
func WithValidation(enabled bool) Option {
	return func(c *Client) {
		c.validate = enabled
	}
}

// WithLogger replaces the logger used for the request/response records.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

/*
New creates a Client around the given transport. Ids start at 1 and
validation is on unless options say otherwise.
*/
func New(transport Transport, opts ...Option) *Client {
	client := &Client{
		transport: transport,
		ids:       jsonrpc.NewCounter(1),
		validator: jsonrpc.NewValidator(),
		validate:  true,
		logger:    log.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

/*
Call invokes a remote method with positional params and returns the
reply's result value. A well-formed error reply comes back as a
*errors.RpcError carrying the peer's code, message and data.
*/
func (c *Client) Call(ctx context.Context, method string, params ...any) (any, error) {
	req, err := jsonrpc.NewRequest(c.ids, method, params, nil)

	if err != nil {
		return nil, err
	}

	return c.Send(ctx, req)
}

// CallNamed invokes a remote method with named params.
func (c *Client) CallNamed(ctx context.Context, method string, params map[string]any) (any, error) {
	req, err := jsonrpc.NewRequest(c.ids, method, nil, params)

	if err != nil {
		return nil, err
	}

	return c.Send(ctx, req)
}

/*
Notify sends a notification: the request carries no id and consumes
none. The reply, if the transport produces one, is still processed the
same way as for Call; transports with true fire-and-forget semantics
simply return nothing and the processed result is nil.
*/
func (c *Client) Notify(ctx context.Context, method string, params ...any) (any, error) {
	req, err := jsonrpc.NewNotification(method, params, nil)

	if err != nil {
		return nil, err
	}

	return c.Send(ctx, req)
}

// NotifyNamed sends a notification with named params.
func (c *Client) NotifyNamed(ctx context.Context, method string, params map[string]any) (any, error) {
	req, err := jsonrpc.NewNotification(method, nil, params)

	if err != nil {
		return nil, err
	}

	return c.Send(ctx, req)
}

/*
Send transmits a pre-built request and processes the reply. Call and
Notify are conveniences over this.
*/
func (c *Client) Send(ctx context.Context, req *jsonrpc.Request) (any, error) {
	if c.validate {
		if err := c.validator.ValidateRequest(req); err != nil {
			return nil, err
		}
	}

	out, err := json.Marshal(req)

	if err != nil {
		return nil, err
	}

	return c.transmit(ctx, out)
}

/*
SendBatch transmits several requests as a single JSON array. The reply
array is returned as-is, in the order the peer sent it, without
unwrapping the individual result members.
*/
func (c *Client) SendBatch(ctx context.Context, reqs []*jsonrpc.Request) (any, error) {
	if len(reqs) == 0 {
		return nil, errors.ErrEmptyBatch
	}

	if c.validate {
		for _, req := range reqs {
			if err := c.validator.ValidateRequest(req); err != nil {
				return nil, err
			}
		}
	}

	out, err := json.Marshal(reqs)

	if err != nil {
		return nil, err
	}

	return c.transmit(ctx, out)
}

func (c *Client) transmit(ctx context.Context, out []byte) (any, error) {
	c.logger.Info("request", "body", string(out))

	raw, err := c.transport.SendMessage(ctx, out)

	if err != nil {
		return nil, err
	}

	return c.ProcessResponse(raw)
}
