package jsonrpc

import (
	"encoding/json"
	"sync/atomic"

	"github.com/google/uuid"
)

/*
IDGenerator produces request identifiers. Every value returned by NextID
must be unique for the lifetime of the generator.
*/
type IDGenerator interface {
	NextID() json.RawMessage
}

/*
Counter is a monotonically increasing integer generator. It is safe for
concurrent callers: the sequence has no gaps and no repeats even when
requests are built from multiple goroutines.
*/
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a Counter whose first value is seed.
func NewCounter(seed int64) *Counter {
	c := &Counter{}
	c.n.Store(seed - 1)
	return c
}

// Next returns the next identifier in the sequence.
func (c *Counter) Next() int64 {
	return c.n.Add(1)
}

// NextID implements IDGenerator.
func (c *Counter) NextID() json.RawMessage {
	return mustMarshalID(c.Next())
}

// Reset restarts the sequence at seed. Intended for test isolation.
func (c *Counter) Reset(seed int64) {
	c.n.Store(seed - 1)
}

/*
UUIDGenerator emits string ids that are unique across processes and
restarts, for integrators correlating requests beyond a single client.
*/
type UUIDGenerator struct{}

// NextID implements IDGenerator.
func (UUIDGenerator) NextID() json.RawMessage {
	return mustMarshalID(uuid.NewString())
}

func mustMarshalID(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
