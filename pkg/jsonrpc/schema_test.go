package jsonrpc

import (
	"testing"

	"github.com/theapemachine/jsonrpc-go/pkg/errors"
)

func TestValidateRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		doc     any
		wantErr bool
	}{
		{
			name: "minimal request",
			doc:  map[string]any{"jsonrpc": "2.0", "method": "ping"},
		},
		{
			name: "positional params and integer id",
			doc:  map[string]any{"jsonrpc": "2.0", "method": "add", "params": []any{1, 2}, "id": 1},
		},
		{
			name: "named params and string id",
			doc:  map[string]any{"jsonrpc": "2.0", "method": "add", "params": map[string]any{"a": 1}, "id": "abc"},
		},
		{
			name:    "missing jsonrpc",
			doc:     map[string]any{"method": "ping"},
			wantErr: true,
		},
		{
			name:    "wrong jsonrpc version",
			doc:     map[string]any{"jsonrpc": "1.0", "method": "ping"},
			wantErr: true,
		},
		{
			name:    "method not a string",
			doc:     map[string]any{"jsonrpc": "2.0", "method": 5},
			wantErr: true,
		},
		{
			name:    "params neither array nor object",
			doc:     map[string]any{"jsonrpc": "2.0", "method": "ping", "params": 5},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateRequest(tc.doc)
			if tc.wantErr && err == nil {
				t.Fatal("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr {
				verr, ok := err.(*errors.ValidationError)
				if !ok {
					t.Fatalf("error type = %T, want *errors.ValidationError", err)
				}
				if verr.Target != "request" {
					t.Fatalf("target = %q, want request", verr.Target)
				}
			}
		})
	}
}

func TestValidateResponse(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		doc     any
		wantErr bool
	}{
		{
			name: "result response",
			doc:  map[string]any{"jsonrpc": "2.0", "result": 5, "id": 1},
		},
		{
			name: "null result is a value",
			doc:  map[string]any{"jsonrpc": "2.0", "result": nil, "id": 1},
		},
		{
			name: "null id",
			doc:  map[string]any{"jsonrpc": "2.0", "result": 5, "id": nil},
		},
		{
			name: "error response",
			doc: map[string]any{
				"jsonrpc": "2.0",
				"error":   map[string]any{"code": -32000, "message": "Not Found"},
				"id":      1,
			},
		},
		{
			name:    "missing jsonrpc",
			doc:     map[string]any{"json": "2.0"},
			wantErr: true,
		},
		{
			name:    "neither result nor error",
			doc:     map[string]any{"jsonrpc": "2.0", "id": 1},
			wantErr: true,
		},
		{
			name: "both result and error",
			doc: map[string]any{
				"jsonrpc": "2.0",
				"result":  5,
				"error":   map[string]any{"code": -32000, "message": "Not Found"},
				"id":      1,
			},
			wantErr: true,
		},
		{
			name: "error lacking code",
			doc: map[string]any{
				"jsonrpc": "2.0",
				"error":   map[string]any{"message": "Not Found"},
				"id":      1,
			},
			wantErr: true,
		},
		{
			name: "error lacking message",
			doc: map[string]any{
				"jsonrpc": "2.0",
				"error":   map[string]any{"code": -32000},
				"id":      1,
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateResponse(tc.doc)
			if tc.wantErr && err == nil {
				t.Fatal("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
