package jsonrpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name        string
		code        ErrorCode
		wantMessage string
	}{
		{name: "parse error", code: ErrParse, wantMessage: "Parse error"},
		{name: "invalid request", code: ErrInvalidRequest, wantMessage: "Invalid Request"},
		{name: "method not found", code: ErrMethodNotFound, wantMessage: "Method not found"},
		{name: "invalid params", code: ErrInvalidParams, wantMessage: "Invalid params"},
		{name: "internal error", code: ErrInternal, wantMessage: "Internal error"},
		{name: "implementation-defined server error", code: -32050, wantMessage: "Server error"},
		{name: "unknown code", code: -1, wantMessage: "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewError(tt.code, nil)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.wantMessage, err.Message)
		})
	}
}

func TestErrorImplementsError(t *testing.T) {
	var err error = NewError(ErrMethodNotFound, nil)
	assert.Equal(t, "-32601: Method not found", err.Error())
}
