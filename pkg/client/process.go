package client

import (
	"encoding/json"
	"reflect"

	"github.com/theapemachine/jsonrpc-go/pkg/errors"
)

/*
ProcessResponse reduces a raw reply to its outcome.

A nil or empty reply means no body was produced (fire-and-forget sends,
or transports that return nothing for notifications) and yields nil.
Textual replies are parsed first; anything else is taken as already
decoded JSON. A batch is returned as the whole ordered array, error
members included, because callers of a batch request inspect the array
themselves. A single response object yields its result value, which may
itself be nil, or a *errors.RpcError when the peer returned an error
object.
*/
func (c *Client) ProcessResponse(raw any) (any, error) {
	if isEmptyReply(raw) {
		return nil, nil
	}

	c.logResponse(raw)

	var value any

	switch reply := raw.(type) {
	case string:
		if err := json.Unmarshal([]byte(reply), &value); err != nil {
			return nil, &errors.ParseResponseError{Raw: reply, Err: err}
		}
	case []byte:
		if err := json.Unmarshal(reply, &value); err != nil {
			return nil, &errors.ParseResponseError{Raw: string(reply), Err: err}
		}
	case json.RawMessage:
		if err := json.Unmarshal(reply, &value); err != nil {
			return nil, &errors.ParseResponseError{Raw: string(reply), Err: err}
		}
	default:
		value = raw
	}

	if batch, ok := asBatch(value); ok {
		if c.validate {
			for _, member := range batch {
				if err := c.validator.ValidateResponse(member); err != nil {
					return nil, err
				}
			}
		}

		return value, nil
	}

	if c.validate {
		if err := c.validator.ValidateResponse(value); err != nil {
			return nil, err
		}
	}

	obj, ok := value.(map[string]any)

	if !ok {
		// Only reachable with validation off; hand the value back untouched.
		return value, nil
	}

	if errObj, ok := obj["error"]; ok {
		return nil, rpcErrorFrom(errObj)
	}

	return obj["result"], nil
}

// isEmptyReply recognizes the "no body at all" replies that short-circuit
// processing before anything is logged or parsed.
func isEmptyReply(raw any) bool {
	switch reply := raw.(type) {
	case nil:
		return true
	case string:
		return reply == ""
	case []byte:
		return len(reply) == 0
	case json.RawMessage:
		return len(reply) == 0
	}

	return false
}

// asBatch recognizes a sequence reply. Structured input may arrive as
// any slice type ([]any from decoded JSON, []map[string]any from Go
// callers), so detection goes through reflection rather than a single
// type assertion. Byte slices are wire text, never a batch.
func asBatch(value any) ([]any, bool) {
	if batch, ok := value.([]any); ok {
		return batch, true
	}

	rv := reflect.ValueOf(value)

	if !rv.IsValid() || rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}

	batch := make([]any, rv.Len())

	for i := range batch {
		batch[i] = rv.Index(i).Interface()
	}

	return batch, true
}

// rpcErrorFrom lifts an "error" member into the typed error through a
// JSON round-trip, so structured input keeps native int codes just as
// decoded text keeps float64 ones. Data stays nil when the member is
// absent, which is distinct from an empty string or empty object the
// peer sent deliberately.
func rpcErrorFrom(v any) *errors.RpcError {
	raw, err := json.Marshal(v)

	if err != nil {
		return errors.ErrInternal.WithMessagef("malformed error object: %v", v)
	}

	rpcErr := &errors.RpcError{}

	if err := json.Unmarshal(raw, rpcErr); err != nil {
		return errors.ErrInternal.WithMessagef("malformed error object: %s", raw)
	}

	return rpcErr
}

func (c *Client) logResponse(raw any) {
	switch reply := raw.(type) {
	case string:
		c.logger.Info("response", "body", reply)
	case []byte:
		c.logger.Info("response", "body", string(reply))
	case json.RawMessage:
		c.logger.Info("response", "body", string(reply))
	default:
		c.logger.Info("response", "body", raw)
	}
}
