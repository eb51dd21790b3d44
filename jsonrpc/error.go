package jsonrpc

import (
	"fmt"
)

// ErrorCode is a JSON-RPC 2.0 error code
type ErrorCode int

// Standard error codes from the JSON-RPC 2.0 specification. Protocol-tier
// failures map onto these; tool-tier failures never do, they travel inside
// successful results.
const (
	// ErrParse: the body could not be parsed as JSON at all
	ErrParse ErrorCode = -32700

	// ErrInvalidRequest: valid JSON, but not a valid request envelope
	ErrInvalidRequest ErrorCode = -32600

	// ErrMethodNotFound: the method (or named tool) does not exist
	ErrMethodNotFound ErrorCode = -32601

	// ErrInvalidParams: the params do not fit the method
	ErrInvalidParams ErrorCode = -32602

	// ErrInternal: the server failed while handling a well-formed request
	ErrInternal ErrorCode = -32603

	// ErrServer: start of the implementation-defined range -32000..-32099
	ErrServer ErrorCode = -32000
)

var errorDetails = map[ErrorCode]string{
	ErrParse:          "Parse error",
	ErrInvalidRequest: "Invalid Request",
	ErrMethodNotFound: "Method not found",
	ErrInvalidParams:  "Invalid params",
	ErrInternal:       "Internal error",
	ErrServer:         "Server error",
}

// Error is a JSON-RPC error object. It also satisfies the error interface
// so protocol failures can flow through ordinary Go error paths.
type Error struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewError creates an Error with the standard message for code and optional
// detail data. Codes inside the reserved server range fall back to the
// generic server error message.
func NewError(code ErrorCode, data interface{}) *Error {
	msg, ok := errorDetails[code]
	if !ok {
		if code >= -32099 && code <= -32000 {
			msg = "Server error"
		} else {
			msg = "Unknown error"
		}
	}

	return &Error{
		Code:    code,
		Message: msg,
		Data:    data,
	}
}
