package tools

import (
	"context"
	"encoding/json"
)

// Tool is the interface that all tools must implement.
type Tool interface {
	// Name returns the name of the tool.
	Name() string

	// Definition returns the tool descriptor in MCP format, including the
	// JSON schema for its arguments.
	Definition() map[string]any

	// Call executes the tool with the given JSON-encoded arguments and
	// returns the report text. An error is returned only for unusable
	// arguments; upstream and data problems are described in the text.
	Call(ctx context.Context, args json.RawMessage) (string, error)
}
