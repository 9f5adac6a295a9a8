package jsonrpc

import (
	"encoding/json"

	"github.com/theapemachine/jsonrpc-go/pkg/errors"
)

// Response keeps Result as raw JSON so that a legitimate null or zero
// result still appears on the wire; exactly one of Result/Error is set.
type Response struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      any              `json:"id,omitempty"` // string | number | null
	Result  json.RawMessage  `json:"result,omitempty"`
	Error   *errors.RpcError `json:"error,omitempty"`
}
