package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// echoTool returns its own name for any call.
type echoTool struct {
	name string
}

func (t *echoTool) Name() string { return t.name }

func (t *echoTool) Definition() map[string]any {
	return map[string]any{
		"name":        t.name,
		"inputSchema": map[string]any{"type": "object"},
	}
}

func (t *echoTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	return fmt.Sprintf("called %s", t.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&echoTool{name: "get_alerts"})

	tool, exists := registry.Get("get_alerts")
	if !exists {
		t.Fatal("Expected registered tool to exist")
	}
	if tool.Name() != "get_alerts" {
		t.Errorf("Expected get_alerts, got %s", tool.Name())
	}

	if _, exists := registry.Get("missing"); exists {
		t.Error("Expected missing tool to not exist")
	}
}

func TestRegistryListPreservesOrder(t *testing.T) {
	registry := NewRegistry()
	names := []string{"get_alerts", "get_forecast", "get_weather_by_city"}
	for _, name := range names {
		registry.Register(&echoTool{name: name})
	}

	defs := registry.List()
	if len(defs) != len(names) {
		t.Fatalf("Expected %d definitions, got %d", len(names), len(defs))
	}
	for i, def := range defs {
		if def["name"] != names[i] {
			t.Errorf("Expected %s at position %d, got %v", names[i], i, def["name"])
		}
	}
}

func TestRegistryReRegisterKeepsSingleEntry(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&echoTool{name: "get_alerts"})
	registry.Register(&echoTool{name: "get_alerts"})

	if got := len(registry.List()); got != 1 {
		t.Errorf("Expected 1 definition after re-registration, got %d", got)
	}
}

func TestRegistryCall(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&echoTool{name: "get_forecast"})

	result, err := registry.Call(context.Background(), "get_forecast", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if result != "called get_forecast" {
		t.Errorf("Unexpected result: %q", result)
	}
}

func TestRegistryCallUnknownTool(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Call(context.Background(), "missing", json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("Expected error for unknown tool")
	}

	var toolErr *Error
	if !errors.As(err, &toolErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if toolErr.Code != "tool_not_found" {
		t.Errorf("Expected tool_not_found code, got %s", toolErr.Code)
	}
}
