package transport

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"sync"
)

/*
Stdio frames messages as newline-delimited JSON over a reader/writer
pair, typically the stdin/stdout of a subprocess server. One reply line
is read per request; calls are serialized so replies cannot interleave.
*/
type Stdio struct {
	mu     sync.Mutex
	reader *bufio.Reader
	writer io.Writer
}

// NewStdio creates a Stdio transport reading replies from in and
// writing requests to out.
func NewStdio(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// SendMessage implements client.Transport.
func (t *Stdio) SendMessage(ctx context.Context, request []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.writer.Write(request); err != nil {
		return nil, err
	}

	if _, err := t.writer.Write([]byte{'\n'}); err != nil {
		return nil, err
	}

	line, err := t.reader.ReadBytes('\n')

	if err != nil && err != io.EOF {
		return nil, err
	}

	return bytes.TrimSpace(line), nil
}
