package jsonrpc

import "context"

// Handler defines the interface for handling JSON-RPC requests
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}
