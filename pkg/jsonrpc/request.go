package jsonrpc

import (
	"encoding/json"

	"github.com/theapemachine/jsonrpc-go/pkg/errors"
)

// Version is the protocol version carried by every message.
const Version = "2.0"

type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"` // string | number; omitted for notifications
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

/*
NewRequest builds a request that expects a correlated reply. The id is
drawn from gen, so a failed build never consumes one. Params are either
positional (args, marshalled to a JSON array) or named (kwargs,
marshalled to a JSON object); supplying both is rejected with
ErrAmbiguousParams, and supplying neither omits the member entirely.
*/
func NewRequest(gen IDGenerator, method string, args []any, kwargs map[string]any) (*Request, error) {
	params, err := marshalParams(args, kwargs)

	if err != nil {
		return nil, err
	}

	return &Request{
		JSONRPC: Version,
		ID:      gen.NextID(),
		Method:  method,
		Params:  params,
	}, nil
}

/*
NewNotification builds a fire-and-forget request. The id member is left
out of the wire form entirely, which is distinct from sending "id": null
(null is a valid id in its own right).
*/
func NewNotification(method string, args []any, kwargs map[string]any) (*Request, error) {
	params, err := marshalParams(args, kwargs)

	if err != nil {
		return nil, err
	}

	return &Request{
		JSONRPC: Version,
		Method:  method,
		Params:  params,
	}, nil
}

// IsNotification reports whether the request carries no id.
func (r *Request) IsNotification() bool {
	return len(r.ID) == 0
}

func marshalParams(args []any, kwargs map[string]any) (json.RawMessage, error) {
	if len(args) > 0 && len(kwargs) > 0 {
		return nil, errors.ErrAmbiguousParams
	}

	if len(args) > 0 {
		return json.Marshal(args)
	}

	if len(kwargs) > 0 {
		return json.Marshal(kwargs)
	}

	return nil, nil
}
