package client

import (
	"context"
	"sync"
)

// CallFunc is a remote method bound to a client.
type CallFunc func(ctx context.Context, params ...any) (any, error)

/*
Bind returns the named remote method as a plain function, so call sites
read like a local invocation:

	multiply := rpc.Bind("multiply")
	product, err := multiply(ctx, 3, 5)
*/
func (c *Client) Bind(method string) CallFunc {
	return func(ctx context.Context, params ...any) (any, error) {
		return c.Call(ctx, method, params...)
	}
}

/*
Proxy caches bound methods over an open method namespace. The namespace
is open on purpose: any name resolves, and whether the method exists is
the peer's call to make.
*/
type Proxy struct {
	client *Client

	mu      sync.Mutex
	methods map[string]CallFunc
}

// Proxy returns a method proxy backed by the client.
func (c *Client) Proxy() *Proxy {
	return &Proxy{
		client:  c,
		methods: make(map[string]CallFunc),
	}
}

// Method resolves a name to a bound method, reusing earlier bindings.
func (p *Proxy) Method(name string) CallFunc {
	p.mu.Lock()
	defer p.mu.Unlock()

	if fn, ok := p.methods[name]; ok {
		return fn
	}

	fn := p.client.Bind(name)
	p.methods[name] = fn

	return fn
}
