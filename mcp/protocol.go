// Package mcp implements a server for a subset of the Model Context
// Protocol: initialize, ping, tools/list and tools/call over JSON-RPC 2.0,
// carried by either a stdio or an HTTP transport. The server is stateless:
// every method is independently callable and no state survives a call,
// which lets deployments scale to zero with no session affinity.
package mcp

// ProtocolVersion is the newest MCP revision this server speaks.
const ProtocolVersion = "2025-03-26"

// supportedVersions are the protocol revisions the server can answer with,
// newest last. The handshake negotiates down to the best mutually-known one.
var supportedVersions = []string{"2024-11-05", "2025-03-26"}

// ServerInfo identifies this implementation to clients
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ServerCapabilities advertises what the server supports
type ServerCapabilities struct {
	Tools *struct {
		ListChanged bool `json:"listChanged"`
	} `json:"tools,omitempty"`
}

// InitializeParams is the client's initialize request payload
type InitializeParams struct {
	ProtocolVersion string     `json:"protocolVersion"`
	Capabilities    any        `json:"capabilities,omitempty"`
	ClientInfo      ClientInfo `json:"clientInfo,omitempty"`
}

// ClientInfo identifies the connecting client
type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InitializeResult is the server's response to an initialize request
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      ServerInfo         `json:"serverInfo"`
	Instructions    string             `json:"instructions,omitempty"`
}

// Tool describes a single invocable capability
type Tool struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	InputSchema InputSchema      `json:"inputSchema"`
	Annotations *ToolAnnotations `json:"annotations,omitempty"`
}

// InputSchema is the minimal object-with-properties declaration for tool
// arguments
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties,omitempty"`
	Required   []string            `json:"required,omitempty"`
}

// Property is one typed field of an input schema
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ToolAnnotations carry display hints about a tool's behavior
type ToolAnnotations struct {
	Title         string `json:"title,omitempty"`
	ReadOnlyHint  bool   `json:"readOnlyHint,omitempty"`
	OpenWorldHint bool   `json:"openWorldHint,omitempty"`
}

// ToolsListResult is the response for the tools/list method
type ToolsListResult struct {
	Tools []Tool `json:"tools"`
}

// ToolCallParams is the request payload for the tools/call method
type ToolCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Content is a single content block in a tool result
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolCallResult is the uniform envelope every tool outcome collapses into:
// success, argument validation failure and transport failure all arrive
// here, distinguished only by IsError.
type ToolCallResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError"`
}

// TextResult creates a successful ToolCallResult with one text block
func TextResult(text string) ToolCallResult {
	return ToolCallResult{
		Content: []Content{{Type: "text", Text: text}},
	}
}

// ErrorResult creates a tool-level error ToolCallResult with one text block
func ErrorResult(text string) ToolCallResult {
	return ToolCallResult{
		Content: []Content{{Type: "text", Text: text}},
		IsError: true,
	}
}
