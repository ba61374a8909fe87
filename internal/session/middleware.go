package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"
)

// MiddlewareConfig contains configuration for the session middleware.
type MiddlewareConfig struct {
	RequireSession bool     // Whether to require a session for all requests
	ExcludedPaths  []string // Path prefixes that skip session validation
}

// DefaultMiddlewareConfig returns default middleware configuration.
func DefaultMiddlewareConfig() MiddlewareConfig {
	return MiddlewareConfig{
		RequireSession: true,
		ExcludedPaths: []string{
			"/health",
			"/metrics",
			"/sessions",
			"/sse",
		},
	}
}

// Middleware validates the Mcp-Session-Id header on protocol requests.
type Middleware struct {
	manager *Manager
	config  MiddlewareConfig
	logger  zerolog.Logger
}

// NewMiddleware creates a new session middleware.
func NewMiddleware(manager *Manager, config MiddlewareConfig, logger zerolog.Logger) *Middleware {
	return &Middleware{
		manager: manager,
		config:  config,
		logger:  logger.With().Str("component", "session_middleware").Logger(),
	}
}

type contextKey string

const sessionContextKey contextKey = "session"

// FromContext retrieves the session from a request context.
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*Session)
	return session, ok
}

// Handler returns the HTTP middleware handler function.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.isPathExcluded(r.URL.Path) || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			id := r.Header.Get(HeaderName)
			if id == "" {
				if m.config.RequireSession {
					m.logger.Debug().
						Str("path", r.URL.Path).
						Str("method", r.Method).
						Msg("Missing session ID header")
					m.sendError(w, r, http.StatusBadRequest, "Missing session ID header", map[string]any{
						"required_header": HeaderName,
					})
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			session, err := m.manager.Validate(r.Context(), id)
			if err != nil {
				m.logger.Debug().
					Err(err).
					Str("session_id", id).
					Str("path", r.URL.Path).
					Msg("Session validation failed")

				statusCode := http.StatusUnauthorized
				if ErrorCode(err) == ErrInvalid {
					statusCode = http.StatusBadRequest
				}
				m.sendError(w, r, statusCode, err.Error(), map[string]any{
					"error_code": ErrorCode(err),
				})
				return
			}

			// Sliding expiration: every validated request extends the
			// session.
			if err := m.manager.Refresh(r.Context(), id); err != nil {
				m.logger.Warn().
					Err(err).
					Str("session_id", id).
					Msg("Failed to refresh session")
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) isPathExcluded(path string) bool {
	for _, excluded := range m.config.ExcludedPaths {
		if strings.HasPrefix(path, excluded) {
			return true
		}
	}
	return false
}

func (m *Middleware) sendError(w http.ResponseWriter, r *http.Request, statusCode int, message string, details map[string]any) {
	render.Status(r, statusCode)
	render.JSON(w, r, map[string]any{
		"error": map[string]any{
			"message": message,
			"code":    statusCode,
			"details": details,
		},
	})
}
