package errors

import (
	"fmt"
)

/*
RpcError represents a well-formed JSON-RPC error object returned by the
remote peer. It is an expected, first-class outcome of a call, not a bug
signal: callers are expected to branch on Code.

Data carries the error object's optional "data" member as decoded JSON.
It can be any JSON value, including nested objects and arrays, and is nil
when the peer sent no data at all.
*/
type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

/*
Error implements the error interface for RpcError.
*/
func (e *RpcError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// Convenience errors (JSON-RPC reserved codes -32700 .. -32000)
// Application specific codes should use other ranges.
var (
	ErrParseError     = &RpcError{Code: -32700, Message: "Parse error"}
	ErrInvalidRequest = &RpcError{Code: -32600, Message: "Invalid Request"}
	ErrMethodNotFound = &RpcError{Code: -32601, Message: "Method not found"}
	ErrInvalidParams  = &RpcError{Code: -32602, Message: "Invalid params"}
	ErrInternal       = &RpcError{Code: -32603, Message: "Internal error"}
)

// WithMessagef creates a *copy* of an RpcError with a formatted message.
// It does not modify the original error variable.
func (e *RpcError) WithMessagef(format string, args ...any) *RpcError {
	newErr := *e
	newErr.Message = fmt.Sprintf(format, args...)
	return &newErr
}
