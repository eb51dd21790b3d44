package mcp

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownTool is returned by Registry.Invoke for a name with no
// registered handler. It marks a protocol-tier failure: the dispatcher
// reports it as "method not found" rather than as a tool-level error.
var ErrUnknownTool = errors.New("unknown tool")

// ToolFunc executes a tool call. Implementations never return an error:
// every failure of a known tool is reported inside the ToolCallResult.
type ToolFunc func(ctx context.Context, args map[string]any) ToolCallResult

// ToolHandler pairs a tool descriptor with its implementation
type ToolHandler struct {
	Tool Tool
	Call ToolFunc
}

// Registry owns the set of tool descriptors. It is populated at startup and
// read-only afterwards, so concurrent invocations need no coordination.
type Registry struct {
	order []string
	tools map[string]ToolHandler
}

// NewRegistry creates an empty tool registry
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]ToolHandler)}
}

// Register adds a tool handler. Registering a duplicate name replaces the
// handler but keeps the original listing position.
func (r *Registry) Register(h ToolHandler) {
	if _, exists := r.tools[h.Tool.Name]; !exists {
		r.order = append(r.order, h.Tool.Name)
	}
	r.tools[h.Tool.Name] = h
}

// List returns the registered tool descriptors in registration order
func (r *Registry) List() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name].Tool)
	}
	return tools
}

// Invoke runs the named tool. An unregistered name yields ErrUnknownTool;
// any outcome of a known tool, including its own failures, arrives as a
// ToolCallResult with a nil error.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (ToolCallResult, error) {
	h, ok := r.tools[name]
	if !ok {
		return ToolCallResult{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return h.Call(ctx, args), nil
}
