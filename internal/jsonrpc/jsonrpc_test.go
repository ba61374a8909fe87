package jsonrpc

import (
	"testing"
)

func TestParseMessageRequest(t *testing.T) {
	msg, err := ParseMessage([]byte(`{"jsonrpc": "2.0", "id": 1, "method": "tools/list"}`))
	if err != nil {
		t.Fatalf("ParseMessage failed: %v", err)
	}

	req, ok := msg.(*Request)
	if !ok {
		t.Fatalf("Expected *Request, got %T", msg)
	}
	if req.Method != "tools/list" {
		t.Errorf("Expected method tools/list, got %s", req.Method)
	}
	if req.ID != float64(1) {
		t.Errorf("Expected ID 1, got %v", req.ID)
	}
}

func TestParseMessageNotification(t *testing.T) {
	msg, err := ParseMessage([]byte(`{"jsonrpc": "2.0", "method": "notifications/initialized"}`))
	if err != nil {
		t.Fatalf("ParseMessage failed: %v", err)
	}

	notif, ok := msg.(*Notification)
	if !ok {
		t.Fatalf("Expected *Notification, got %T", msg)
	}
	if notif.Method != "notifications/initialized" {
		t.Errorf("Unexpected method %s", notif.Method)
	}
}

func TestParseMessageResponse(t *testing.T) {
	msg, err := ParseMessage([]byte(`{"jsonrpc": "2.0", "id": "abc", "result": {"ok": true}}`))
	if err != nil {
		t.Fatalf("ParseMessage failed: %v", err)
	}

	if _, ok := msg.(*Response); !ok {
		t.Fatalf("Expected *Response, got %T", msg)
	}
}

func TestParseMessageErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		code ErrorCode
	}{
		{"invalid json", `{not json`, ParseError},
		{"wrong version", `{"jsonrpc": "1.0", "id": 1, "method": "x"}`, InvalidRequest},
		{"missing version", `{"id": 1, "method": "x"}`, InvalidRequest},
		{"empty object", `{"jsonrpc": "2.0"}`, InvalidRequest},
	}

	for _, tc := range cases {
		_, err := ParseMessage([]byte(tc.data))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		rpcErr, ok := err.(*Error)
		if !ok {
			t.Errorf("%s: expected *Error, got %T", tc.name, err)
			continue
		}
		if rpcErr.Code != tc.code {
			t.Errorf("%s: expected code %d, got %d", tc.name, tc.code, rpcErr.Code)
		}
	}
}

func TestNewResponseHelpers(t *testing.T) {
	resp := NewResponse(7, "ok")
	if resp.JSONRPC != Version || resp.ID != 7 || resp.Result != "ok" || resp.Error != nil {
		t.Errorf("Unexpected success response: %+v", resp)
	}

	errResp := NewErrorResponse(7, NewError(MethodNotFound, "Method not found", nil))
	if errResp.Error == nil || errResp.Error.Code != MethodNotFound {
		t.Errorf("Unexpected error response: %+v", errResp)
	}
	if errResp.Result != nil {
		t.Error("Error response must not carry a result")
	}
}
