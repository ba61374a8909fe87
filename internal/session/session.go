// Package session manages MCP client sessions: issuing IDs, validating and
// refreshing them on each protocol request, and sweeping expired ones.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// HeaderName is the HTTP header carrying the session ID.
const HeaderName = "Mcp-Session-Id"

const (
	idPrefix      = "sess"
	idRandomBytes = 32
)

// Session represents an active client session
type Session struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LastAccess time.Time `json:"last_access"`
	ExpiresAt  time.Time `json:"expires_at"`
	RemoteAddr string    `json:"remote_addr"`
	UserAgent  string    `json:"user_agent"`
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Error codes for session operations
const (
	ErrNotFound   = "SESSION_NOT_FOUND"
	ErrExpired    = "SESSION_EXPIRED"
	ErrInvalid    = "SESSION_INVALID"
	ErrGeneration = "SESSION_GENERATION_FAILED"
)

// Error represents a session-related error
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the code from a session error, or UNKNOWN_ERROR.
func ErrorCode(err error) string {
	if sessionErr, ok := err.(*Error); ok {
		return sessionErr.Code
	}
	return "UNKNOWN_ERROR"
}

var (
	timestampPattern = regexp.MustCompile(`^\d+$`)
	randomPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// generateID creates a cryptographically secure session ID of the form
// sess.<unix timestamp>.<base64url random part>.
func generateID() (string, error) {
	randomBytes := make([]byte, idRandomBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", &Error{Code: ErrGeneration, Message: "failed to generate session ID", Cause: err}
	}

	randomPart := base64.RawURLEncoding.EncodeToString(randomBytes)
	return fmt.Sprintf("%s.%d.%s", idPrefix, time.Now().Unix(), randomPart), nil
}

// validateID checks that a session ID has the expected format before any
// lookup happens, so malformed IDs are rejected cheaply.
func validateID(id string) error {
	if id == "" {
		return newError(ErrInvalid, "empty session ID")
	}

	parts := strings.Split(id, ".")
	if len(parts) != 3 || parts[0] != idPrefix {
		return newError(ErrInvalid, "invalid session ID format")
	}
	if !timestampPattern.MatchString(parts[1]) {
		return newError(ErrInvalid, "invalid timestamp in session ID")
	}
	if !randomPattern.MatchString(parts[2]) {
		return newError(ErrInvalid, "invalid characters in session ID")
	}
	if len(parts[2]) < base64.RawURLEncoding.EncodedLen(idRandomBytes) {
		return newError(ErrInvalid, "session ID random part too short")
	}

	return nil
}
