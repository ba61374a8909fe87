// Package jsonrpc implements the JSON-RPC 2.0 message layer used by the MCP
// endpoint.
package jsonrpc

import (
	"encoding/json"
	"fmt"
)

const Version = "2.0"

// Request is a call expecting a response.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response answers a request by ID with either a result or an error.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Notification is a call without an ID; it must not be answered.
type Notification struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type ErrorCode int

const (
	ParseError     ErrorCode = -32700
	InvalidRequest ErrorCode = -32600
	MethodNotFound ErrorCode = -32601
	InvalidParams  ErrorCode = -32602
	InternalError  ErrorCode = -32603
)

// Error is a JSON-RPC error object.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("JSON-RPC error %d: %s", e.Code, e.Message)
}

// NewError creates a new JSON-RPC error.
func NewError(code ErrorCode, message string, data any) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewResponse creates a success response for the given request ID.
func NewResponse(id, result any) *Response {
	return &Response{
		JSONRPC: Version,
		ID:      id,
		Result:  result,
	}
}

// NewErrorResponse creates an error response for the given request ID.
func NewErrorResponse(id any, err *Error) *Response {
	return &Response{
		JSONRPC: Version,
		ID:      id,
		Error:   err,
	}
}

// ParseMessage decodes a single JSON-RPC message and returns a *Request,
// *Notification, or *Response depending on its shape. Batches are not
// supported.
func ParseMessage(data []byte) (any, error) {
	var msg struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      any             `json:"id,omitempty"`
		Method  string          `json:"method,omitempty"`
		Params  json.RawMessage `json:"params,omitempty"`
		Error   *Error          `json:"error,omitempty"`
		Result  json.RawMessage `json:"result,omitempty"`
	}

	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, NewError(ParseError, "Parse error", nil)
	}

	if msg.JSONRPC != Version {
		return nil, NewError(InvalidRequest, "Invalid JSON-RPC version", nil)
	}

	switch {
	case msg.ID == nil && msg.Method != "":
		return &Notification{
			JSONRPC: msg.JSONRPC,
			Method:  msg.Method,
			Params:  msg.Params,
		}, nil

	case msg.ID != nil && msg.Method != "":
		return &Request{
			JSONRPC: msg.JSONRPC,
			ID:      msg.ID,
			Method:  msg.Method,
			Params:  msg.Params,
		}, nil

	case msg.ID != nil && (msg.Result != nil || msg.Error != nil):
		return &Response{
			JSONRPC: msg.JSONRPC,
			ID:      msg.ID,
			Result:  msg.Result,
			Error:   msg.Error,
		}, nil
	}

	return nil, NewError(InvalidRequest, "Invalid message", nil)
}
