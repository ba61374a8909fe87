package report

import (
	"strings"
	"testing"
)

func TestResolveState(t *testing.T) {
	city, ok := ResolveState("TX")
	if !ok || city != "Houston" {
		t.Errorf("Expected Houston for TX, got %q (ok=%v)", city, ok)
	}

	// Lookup is case-insensitive.
	city, ok = ResolveState("fl")
	if !ok || city != "Miami" {
		t.Errorf("Expected Miami for fl, got %q (ok=%v)", city, ok)
	}

	if _, ok := ResolveState("ZZ"); ok {
		t.Error("Expected ZZ to be unresolved")
	}
	if _, ok := ResolveState(""); ok {
		t.Error("Expected empty state to be unresolved")
	}
}

func TestSupportedStatesSorted(t *testing.T) {
	codes := SupportedStates()
	if len(codes) != 10 {
		t.Fatalf("Expected 10 supported states, got %d", len(codes))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("Expected sorted codes, got %v", codes)
			break
		}
	}
}

func TestUnsupportedStateMessage(t *testing.T) {
	msg := UnsupportedStateMessage("ZZ")

	if !strings.Contains(msg, "ZZ") {
		t.Errorf("Expected message to name the state, got %q", msg)
	}
	for _, code := range SupportedStates() {
		if !strings.Contains(msg, code) {
			t.Errorf("Expected message to list %s, got %q", code, msg)
		}
	}
}
