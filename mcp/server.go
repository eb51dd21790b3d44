package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sort"

	"github.com/a48zhang/luogu-mcp/jsonrpc"
)

// Server dispatches JSON-RPC requests to method handlers. It keeps no
// per-call or cross-call state: handlers receive only the parsed envelope of
// the current call, so the handshake does not gate any other method and
// concurrent calls never interfere.
type Server struct {
	info        ServerInfo
	registry    *Registry
	logger      *slog.Logger
	echoVersion bool

	handlers map[string]handlerFunc
}

type handlerFunc func(ctx context.Context, request jsonrpc.Request) jsonrpc.Response

// ServerOption configures a Server
type ServerOption func(*Server)

// WithServerInfo sets the identity reported by the handshake
func WithServerInfo(info ServerInfo) ServerOption {
	return func(s *Server) {
		s.info = info
	}
}

// WithRegistry sets the tool registry the server exposes
func WithRegistry(registry *Registry) ServerOption {
	return func(s *Server) {
		s.registry = registry
	}
}

// WithLogger sets the server logger
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithVersionEcho makes the handshake answer with whatever protocol version
// the client offered, instead of negotiating down to a known one.
func WithVersionEcho(echo bool) ServerOption {
	return func(s *Server) {
		s.echoVersion = echo
	}
}

// NewServer creates an MCP server instance
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		info:     ServerInfo{Name: "luogu-mcp", Version: "1.0.0"},
		registry: NewRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.handlers = map[string]handlerFunc{
		"initialize": s.handleInitialize,
		"ping":       s.handlePing,
		"tools/list": s.handleToolsList,
		"tools/call": s.handleToolsCall,
	}

	return s
}

var _ jsonrpc.Handler = (*Server)(nil)

// Handle processes a single JSON-RPC request and returns a response.
// Notifications never reach this method; transports acknowledge them
// without dispatching.
func (s *Server) Handle(ctx context.Context, request jsonrpc.Request) jsonrpc.Response {
	handler, ok := s.handlers[request.Method]
	if !ok {
		s.logger.Debug("method not found", "method", request.Method)
		return jsonrpc.NewResponse(request.ID(), nil, jsonrpc.NewError(jsonrpc.ErrMethodNotFound, request.Method))
	}
	return handler(ctx, request)
}

// Methods returns the supported request method names, sorted
func (s *Server) Methods() []string {
	methods := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		methods = append(methods, name)
	}
	sort.Strings(methods)
	return methods
}

func (s *Server) handleInitialize(_ context.Context, request jsonrpc.Request) jsonrpc.Response {
	var params InitializeParams
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, &params); err != nil {
			return jsonrpc.NewResponse(request.ID(), nil, jsonrpc.NewError(jsonrpc.ErrInvalidParams, err.Error()))
		}
	}

	capabilities := ServerCapabilities{}
	capabilities.Tools = &struct {
		ListChanged bool `json:"listChanged"`
	}{}

	result := InitializeResult{
		ProtocolVersion: s.negotiateVersion(params.ProtocolVersion),
		Capabilities:    capabilities,
		ServerInfo:      s.info,
	}

	s.logger.Debug("initialized",
		"client", params.ClientInfo.Name,
		"clientVersion", params.ClientInfo.Version,
		"protocolVersion", result.ProtocolVersion)

	return jsonrpc.NewResponse(request.ID(), result, nil)
}

// negotiateVersion picks the protocol version to answer with: the client's
// when the server knows it, otherwise the server's own newest. The echo
// policy instead returns any non-empty client offer unchanged.
func (s *Server) negotiateVersion(requested string) string {
	if requested == "" {
		return ProtocolVersion
	}
	if s.echoVersion {
		return requested
	}
	for _, v := range supportedVersions {
		if v == requested {
			return requested
		}
	}
	return ProtocolVersion
}

func (s *Server) handlePing(_ context.Context, request jsonrpc.Request) jsonrpc.Response {
	return jsonrpc.NewResponse(request.ID(), struct{}{}, nil)
}

func (s *Server) handleToolsList(_ context.Context, request jsonrpc.Request) jsonrpc.Response {
	return jsonrpc.NewResponse(request.ID(), ToolsListResult{Tools: s.registry.List()}, nil)
}

func (s *Server) handleToolsCall(ctx context.Context, request jsonrpc.Request) jsonrpc.Response {
	var params ToolCallParams
	if err := json.Unmarshal(request.Params, &params); err != nil {
		return jsonrpc.NewResponse(request.ID(), nil, jsonrpc.NewError(jsonrpc.ErrInvalidParams, err.Error()))
	}
	if params.Name == "" {
		return jsonrpc.NewResponse(request.ID(), nil, jsonrpc.NewError(jsonrpc.ErrInvalidParams, "tool name is required"))
	}

	result, err := s.registry.Invoke(ctx, params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, ErrUnknownTool) {
			return jsonrpc.NewResponse(request.ID(), nil, jsonrpc.NewError(jsonrpc.ErrMethodNotFound, err.Error()))
		}
		return jsonrpc.NewResponse(request.ID(), nil, jsonrpc.NewError(jsonrpc.ErrInternal, err.Error()))
	}

	s.logger.Debug("tool invoked", "tool", params.Name, "isError", result.IsError)

	return jsonrpc.NewResponse(request.ID(), result, nil)
}
