package tools

import (
	"context"
	"encoding/json"
	"sync"
)

// Registry manages the collection of available tools.
type Registry struct {
	tools map[string]Tool
	order []string
	mu    sync.RWMutex
}

// NewRegistry creates a new tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a new tool to the registry. Registration order is preserved
// for listings.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name()]; !exists {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	return tool, exists
}

// List returns the definitions of all registered tools in registration order.
func (r *Registry) List() []map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]map[string]any, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Definition())
	}
	return defs
}

// Call executes a tool with the given arguments and context.
func (r *Registry) Call(ctx context.Context, toolName string, args json.RawMessage) (string, error) {
	tool, exists := r.Get(toolName)
	if !exists {
		return "", &Error{Code: "tool_not_found", Message: "Tool not found: " + toolName}
	}

	return tool.Call(ctx, args)
}

// Error represents a tool execution error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}
