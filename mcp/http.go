package mcp

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/a48zhang/luogu-mcp/jsonrpc"
)

// HTTPHandler serves JSON-RPC over a single POST endpoint. One request per
// call, no session: the transport parallels the stdio one but answers over
// the HTTP response body.
type HTTPHandler struct {
	handler      jsonrpc.Handler
	logger       *slog.Logger
	notifyStatus int
}

// HTTPOption configures an HTTPHandler
type HTTPOption func(*HTTPHandler)

// WithNotificationStatus sets the status code returned for notifications.
// Both 202 and 204 are in use by clients; 202 is the default.
func WithNotificationStatus(code int) HTTPOption {
	return func(h *HTTPHandler) {
		if code == http.StatusAccepted || code == http.StatusNoContent {
			h.notifyStatus = code
		}
	}
}

// WithHTTPLogger sets the transport logger
func WithHTTPLogger(logger *slog.Logger) HTTPOption {
	return func(h *HTTPHandler) {
		h.logger = logger
	}
}

// NewHTTPHandler creates an HTTP transport for the given handler
func NewHTTPHandler(handler jsonrpc.Handler, opts ...HTTPOption) *HTTPHandler {
	h := &HTTPHandler{
		handler:      handler,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		notifyStatus: http.StatusAccepted,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var _ http.Handler = (*HTTPHandler)(nil)

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parameterized forms like "application/json; charset=utf-8" are fine;
	// anything else is rejected with a protocol error, not a bare HTTP 415.
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		h.writeResponse(w, jsonrpc.NewResponse(nil, nil,
			jsonrpc.NewError(jsonrpc.ErrParse, "Content-Type must be application/json")))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeResponse(w, jsonrpc.NewResponse(nil, nil,
			jsonrpc.NewError(jsonrpc.ErrParse, "failed to read request body")))
		return
	}

	request, rpcErr := jsonrpc.Parse(body)
	if rpcErr != nil {
		h.writeResponse(w, jsonrpc.NewResponse(nil, nil, rpcErr))
		return
	}

	if request.IsNotification() {
		h.logger.Debug("notification accepted", "method", request.Method)
		w.WriteHeader(h.notifyStatus)
		return
	}

	h.writeResponse(w, h.handler.Handle(r.Context(), request))
}

func (h *HTTPHandler) writeResponse(w http.ResponseWriter, response jsonrpc.Response) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
