package jsonrpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		wantCode         ErrorCode // zero means the parse must succeed
		wantMethod       string
		wantNotification bool
		wantID           interface{}
	}{
		{
			name:       "request with numeric id",
			input:      `{"jsonrpc":"2.0","id":1,"method":"ping"}`,
			wantMethod: "ping",
			wantID:     1,
		},
		{
			name:       "request with string id",
			input:      `{"jsonrpc":"2.0","id":"abc","method":"tools/list"}`,
			wantMethod: "tools/list",
			wantID:     "abc",
		},
		{
			name:       "request with params",
			input:      `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_problem"}}`,
			wantMethod: "tools/call",
			wantID:     2,
		},
		{
			name:             "notification has no id key",
			input:            `{"jsonrpc":"2.0","method":"notifications/initialized"}`,
			wantMethod:       "notifications/initialized",
			wantNotification: true,
		},
		{
			name:             "notification with unrecognized method still parses",
			input:            `{"jsonrpc":"2.0","method":"no/such/method"}`,
			wantMethod:       "no/such/method",
			wantNotification: true,
		},
		{
			name:     "null id is not a notification and not a request",
			input:    `{"jsonrpc":"2.0","id":null,"method":"ping"}`,
			wantCode: ErrInvalidRequest,
		},
		{
			name:     "boolean id",
			input:    `{"jsonrpc":"2.0","id":true,"method":"ping"}`,
			wantCode: ErrInvalidRequest,
		},
		{
			name:     "missing version tag",
			input:    `{"id":1,"method":"ping"}`,
			wantCode: ErrInvalidRequest,
		},
		{
			name:     "wrong version tag",
			input:    `{"jsonrpc":"1.0","id":1,"method":"ping"}`,
			wantCode: ErrInvalidRequest,
		},
		{
			name:     "missing method",
			input:    `{"jsonrpc":"2.0","id":1}`,
			wantCode: ErrInvalidRequest,
		},
		{
			name:     "method is not a string",
			input:    `{"jsonrpc":"2.0","id":1,"method":42}`,
			wantCode: ErrInvalidRequest,
		},
		{
			name:     "empty method",
			input:    `{"jsonrpc":"2.0","id":1,"method":""}`,
			wantCode: ErrInvalidRequest,
		},
		{
			name:     "params is not an object",
			input:    `{"jsonrpc":"2.0","id":1,"method":"ping","params":[1,2]}`,
			wantCode: ErrInvalidRequest,
		},
		{
			name:     "body is not JSON",
			input:    `{"jsonrpc": "2.0" method: oops}`,
			wantCode: ErrParse,
		},
		{
			name:     "body is a JSON array",
			input:    `[{"jsonrpc":"2.0","id":1,"method":"ping"}]`,
			wantCode: ErrInvalidRequest,
		},
		{
			name:     "body is a bare string",
			input:    `"ping"`,
			wantCode: ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rpcErr := Parse([]byte(tt.input))

			if tt.wantCode != 0 {
				require.NotNil(t, rpcErr)
				assert.Equal(t, tt.wantCode, rpcErr.Code)
				return
			}

			require.Nil(t, rpcErr)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, tt.wantNotification, req.IsNotification())
			if tt.wantID != nil {
				assert.True(t, req.ID().Equal(tt.wantID))
			}
		})
	}
}

func TestParseNullParamsTreatedAsAbsent(t *testing.T) {
	req, rpcErr := Parse([]byte(`{"jsonrpc":"2.0","id":1,"method":"ping","params":null}`))
	require.Nil(t, rpcErr)
	assert.Nil(t, req.Params)
}

func TestRequestMarshalOmitsIDForNotifications(t *testing.T) {
	notification := NewRequest("notifications/initialized", nil, nil)
	data, err := json.Marshal(notification)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"id"`)

	request := NewRequest("ping", nil, 7)
	data, err = json.Marshal(request)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":7`)
}

func TestParseRoundTrip(t *testing.T) {
	original := NewRequest("tools/call", json.RawMessage(`{"name":"get_problem"}`), "req-1")
	data, err := json.Marshal(original)
	require.NoError(t, err)

	parsed, rpcErr := Parse(data)
	require.Nil(t, rpcErr)
	assert.Equal(t, original.Method, parsed.Method)
	assert.False(t, parsed.IsNotification())
	assert.True(t, parsed.ID().Equal("req-1"))
}
