package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a48zhang/luogu-mcp/jsonrpc"
)

// Transport carries newline-delimited JSON-RPC between stdin/stdout and a
// handler, for use as a local MCP server.
type Transport struct {
	handler jsonrpc.Handler
	scanner *bufio.Scanner
	writer  *json.Encoder
	bufOut  *bufio.Writer
	errOut  io.Writer
}

// NewStdioTransport creates a new stdio transport
func NewStdioTransport(handler jsonrpc.Handler, in io.Reader, out io.Writer, errOut io.Writer) *Transport {
	scanner := bufio.NewScanner(in)
	// Set a reasonable max size for each line
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	bufOut := bufio.NewWriter(out)
	return &Transport{
		handler: handler,
		scanner: scanner,
		writer:  json.NewEncoder(bufOut),
		bufOut:  bufOut,
		errOut:  errOut,
	}
}

// Run starts the transport loop, reading requests line by line and writing
// responses. Notifications produce no output line.
func (t *Transport) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if !t.scanner.Scan() {
				if err := t.scanner.Err(); err != nil {
					return fmt.Errorf("scanner error: %v", err)
				}
				return nil
			}

			line := t.scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			request, rpcErr := jsonrpc.Parse(line)
			if rpcErr != nil {
				t.write(jsonrpc.NewResponse(nil, nil, rpcErr))
				continue
			}

			if request.IsNotification() {
				continue
			}

			t.write(t.handler.Handle(ctx, request))
		}
	}
}

func (t *Transport) write(response jsonrpc.Response) {
	if err := t.writer.Encode(response); err != nil {
		fmt.Fprintf(t.errOut, "Error encoding response: %v\n", err)
	}
	t.bufOut.Flush()
}
