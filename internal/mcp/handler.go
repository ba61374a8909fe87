// Package mcp implements the Model Context Protocol surface of the server:
// JSON-RPC messages over POST /mcp, and the SSE handshake for clients using
// the SSE transport. Tool semantics live behind the registry; this package
// only translates between protocol messages and registry calls.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"

	"weather-mcp-go/internal/jsonrpc"
	"weather-mcp-go/internal/tools"
)

const (
	// ProtocolVersion is the MCP revision this server speaks.
	ProtocolVersion = "2024-11-05"

	ServerName    = "weather-mcp-go"
	ServerVersion = "1.0.0"
)

// ToolRegistry is the registry surface the handler depends on. Both the
// plain registry and its telemetry wrapper satisfy it.
type ToolRegistry interface {
	List() []map[string]any
	Call(ctx context.Context, name string, args json.RawMessage) (string, error)
}

// Handler serves MCP messages.
type Handler struct {
	registry ToolRegistry
	logger   zerolog.Logger
}

// NewHandler creates an MCP handler over the given tool registry.
func NewHandler(registry ToolRegistry, logger zerolog.Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger.With().Str("component", "mcp_handler").Logger(),
	}
}

// ServeMessage handles POST /mcp: one JSON-RPC message in, one response out.
// Notifications are accepted with no body.
func (h *Handler) ServeMessage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to read request body")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, jsonrpc.NewErrorResponse(nil, jsonrpc.NewError(jsonrpc.ParseError, "Could not read request body", nil)))
		return
	}

	msg, parseErr := jsonrpc.ParseMessage(body)
	if parseErr != nil {
		var rpcErr *jsonrpc.Error
		if !errors.As(parseErr, &rpcErr) {
			rpcErr = jsonrpc.NewError(jsonrpc.ParseError, "Parse error", nil)
		}
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, jsonrpc.NewErrorResponse(nil, rpcErr))
		return
	}

	switch m := msg.(type) {
	case *jsonrpc.Notification:
		h.handleNotification(m)
		w.WriteHeader(http.StatusAccepted)

	case *jsonrpc.Request:
		resp := h.handleRequest(r.Context(), m)
		render.JSON(w, r, resp)

	default:
		// Responses from clients have no meaning on this endpoint.
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, jsonrpc.NewErrorResponse(nil, jsonrpc.NewError(jsonrpc.InvalidRequest, "Unexpected message type", nil)))
	}
}

func (h *Handler) handleNotification(n *jsonrpc.Notification) {
	h.logger.Debug().
		Str("method", n.Method).
		Msg("Notification received")
}

func (h *Handler) handleRequest(ctx context.Context, req *jsonrpc.Request) *jsonrpc.Response {
	h.logger.Debug().
		Str("method", req.Method).
		Interface("id", req.ID).
		Msg("Handling request")

	switch req.Method {
	case "initialize":
		return jsonrpc.NewResponse(req.ID, map[string]any{
			"protocolVersion": ProtocolVersion,
			"capabilities": map[string]any{
				"tools": map[string]any{
					"listChanged": false,
				},
			},
			"serverInfo": map[string]any{
				"name":    ServerName,
				"version": ServerVersion,
			},
		})

	case "ping":
		return jsonrpc.NewResponse(req.ID, map[string]any{})

	case "tools/list":
		return jsonrpc.NewResponse(req.ID, map[string]any{
			"tools": h.registry.List(),
		})

	case "tools/call":
		return h.handleToolCall(ctx, req)

	default:
		return jsonrpc.NewErrorResponse(req.ID, jsonrpc.NewError(jsonrpc.MethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), nil))
	}
}

// toolCallParams represents the params of a tools/call request.
type toolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (h *Handler) handleToolCall(ctx context.Context, req *jsonrpc.Request) *jsonrpc.Response {
	var params toolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return jsonrpc.NewErrorResponse(req.ID, jsonrpc.NewError(jsonrpc.InvalidParams, "Invalid tools/call params", nil))
	}
	if params.Name == "" {
		return jsonrpc.NewErrorResponse(req.ID, jsonrpc.NewError(jsonrpc.InvalidParams, "Tool name is required", nil))
	}

	args := params.Arguments
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}

	text, err := h.registry.Call(ctx, params.Name, args)
	if err != nil {
		var toolErr *tools.Error
		if errors.As(err, &toolErr) && toolErr.Code == "tool_not_found" {
			return jsonrpc.NewErrorResponse(req.ID, jsonrpc.NewError(jsonrpc.InvalidParams, toolErr.Message, nil))
		}

		// Argument errors are surfaced as tool results, not protocol
		// errors, so agent hosts can show them to the model.
		h.logger.Debug().
			Err(err).
			Str("tool", params.Name).
			Msg("Tool call rejected")
		return jsonrpc.NewResponse(req.ID, toolResult(err.Error(), true))
	}

	return jsonrpc.NewResponse(req.ID, toolResult(text, false))
}

func toolResult(text string, isError bool) map[string]any {
	result := map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
	}
	if isError {
		result["isError"] = true
	}
	return result
}

// ServeSSE handles GET /sse for clients using the SSE transport: it
// announces the message endpoint and keeps the stream open with periodic
// keep-alive comments until the client disconnects.
func (h *Handler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: endpoint\ndata: /mcp\n\n")
	flusher.Flush()

	h.logger.Debug().
		Str("remote_addr", r.RemoteAddr).
		Msg("SSE stream opened")

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Debug().
				Str("remote_addr", r.RemoteAddr).
				Msg("SSE stream closed")
			return
		case <-ticker.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
