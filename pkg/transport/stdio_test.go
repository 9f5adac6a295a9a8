package transport

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdioSendMessage(t *testing.T) {
	in := strings.NewReader(`{"jsonrpc": "2.0", "result": 5, "id": 1}` + "\n")
	var out bytes.Buffer

	tr := NewStdio(in, &out)

	reply, err := tr.SendMessage(
		context.Background(),
		[]byte(`{"jsonrpc": "2.0", "method": "ping", "id": 1}`),
	)
	require.NoError(t, err)

	assert.Equal(t, `{"jsonrpc": "2.0", "result": 5, "id": 1}`, string(reply))
	assert.Equal(t, `{"jsonrpc": "2.0", "method": "ping", "id": 1}`+"\n", out.String())
}

func TestStdioEOFReply(t *testing.T) {
	// A peer that closes without replying yields an empty body, which
	// the client processes to nil.
	in := strings.NewReader("")
	var out bytes.Buffer

	tr := NewStdio(in, &out)

	reply, err := tr.SendMessage(context.Background(), []byte(`{"jsonrpc": "2.0", "method": "hb"}`))
	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestStdioCancelledContext(t *testing.T) {
	tr := NewStdio(strings.NewReader(""), &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.SendMessage(ctx, []byte(`{}`))
	require.Error(t, err)
}
