package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a48zhang/luogu-mcp/jsonrpc"
)

func postJSON(t *testing.T, handler http.Handler, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) jsonrpc.Response {
	t.Helper()
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	var response jsonrpc.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func TestHTTPHandlerDispatch(t *testing.T) {
	handler := NewHTTPHandler(newTestServer(t))

	recorder := postJSON(t, handler, "application/json",
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	response := decodeResponse(t, recorder)
	assert.Nil(t, response.Error)
	assert.True(t, response.ID.Equal(1))
}

func TestHTTPHandlerRejectsNonPost(t *testing.T) {
	handler := NewHTTPHandler(newTestServer(t))

	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	assert.Equal(t, http.MethodPost, recorder.Header().Get("Allow"))
}

func TestHTTPHandlerContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		accepted    bool
	}{
		{name: "plain json", contentType: "application/json", accepted: true},
		{name: "json with charset", contentType: "application/json; charset=utf-8", accepted: true},
		{name: "text plain", contentType: "text/plain", accepted: false},
		{name: "missing", contentType: "", accepted: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := NewHTTPHandler(newTestServer(t))
			recorder := postJSON(t, handler, test.contentType,
				`{"jsonrpc":"2.0","id":1,"method":"ping"}`)

			response := decodeResponse(t, recorder)
			if test.accepted {
				assert.Nil(t, response.Error)
			} else {
				require.NotNil(t, response.Error)
				assert.Equal(t, jsonrpc.ErrParse, response.Error.Code)
			}
		})
	}
}

func TestHTTPHandlerParseError(t *testing.T) {
	handler := NewHTTPHandler(newTestServer(t))

	recorder := postJSON(t, handler, "application/json", `{not json`)

	response := decodeResponse(t, recorder)
	require.NotNil(t, response.Error)
	assert.Equal(t, jsonrpc.ErrParse, response.Error.Code)
	assert.True(t, response.ID.IsNil())
}

func TestHTTPHandlerInvalidEnvelope(t *testing.T) {
	handler := NewHTTPHandler(newTestServer(t))

	recorder := postJSON(t, handler, "application/json", `["not","an","object"]`)

	response := decodeResponse(t, recorder)
	require.NotNil(t, response.Error)
	assert.Equal(t, jsonrpc.ErrInvalidRequest, response.Error.Code)
}

func TestHTTPHandlerNotifications(t *testing.T) {
	tests := []struct {
		name string
		opts []HTTPOption
		body string
		want int
	}{
		{
			name: "default status",
			body: `{"jsonrpc":"2.0","method":"notifications/initialized"}`,
			want: http.StatusAccepted,
		},
		{
			name: "configured no content",
			opts: []HTTPOption{WithNotificationStatus(http.StatusNoContent)},
			body: `{"jsonrpc":"2.0","method":"notifications/initialized"}`,
			want: http.StatusNoContent,
		},
		{
			name: "unknown method is still accepted",
			body: `{"jsonrpc":"2.0","method":"notifications/does_not_exist"}`,
			want: http.StatusAccepted,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := NewHTTPHandler(newTestServer(t), test.opts...)
			recorder := postJSON(t, handler, "application/json", test.body)

			assert.Equal(t, test.want, recorder.Code)
			assert.Empty(t, recorder.Body.String())
		})
	}
}

func TestHTTPHandlerIgnoresInvalidNotificationStatus(t *testing.T) {
	handler := NewHTTPHandler(newTestServer(t), WithNotificationStatus(http.StatusTeapot))
	recorder := postJSON(t, handler, "application/json",
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`)

	assert.Equal(t, http.StatusAccepted, recorder.Code)
}
