package session

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"
)

// Handler exposes session lifecycle endpoints.
type Handler struct {
	manager *Manager
	logger  zerolog.Logger
}

// NewHandler creates a session handler.
func NewHandler(manager *Manager, logger zerolog.Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger.With().Str("component", "session_handler").Logger(),
	}
}

// Info is the wire representation of a session.
type Info struct {
	ID         string `json:"id"`
	ExpiresAt  string `json:"expires_at"`
	RemoteAddr string `json:"remote_addr"`
	UserAgent  string `json:"user_agent"`
}

func sessionInfo(s *Session) Info {
	return Info{
		ID:         s.ID,
		ExpiresAt:  s.ExpiresAt.Format(time.RFC3339),
		RemoteAddr: s.RemoteAddr,
		UserAgent:  s.UserAgent,
	}
}

// Create handles POST /sessions: issues a new session and returns its ID in
// both the body and the Mcp-Session-Id header.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.manager.Create(r.Context(), r.RemoteAddr, r.UserAgent())
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("remote_addr", r.RemoteAddr).
			Msg("Failed to create session")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]any{
			"error": map[string]any{
				"message": "Failed to create session",
				"code":    ErrorCode(err),
			},
		})
		return
	}

	w.Header().Set(HeaderName, session.ID)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]any{
		"session": sessionInfo(session),
	})
}

// Delete handles DELETE /sessions: ends the session named by the
// Mcp-Session-Id header.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(HeaderName)
	if id == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]any{
			"error": map[string]any{
				"message": "Session ID required in " + HeaderName + " header",
			},
		})
		return
	}

	if err := h.manager.Delete(r.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if ErrorCode(err) == ErrNotFound {
			statusCode = http.StatusNotFound
		}
		render.Status(r, statusCode)
		render.JSON(w, r, map[string]any{
			"error": map[string]any{
				"message": err.Error(),
				"code":    ErrorCode(err),
			},
		})
		return
	}

	render.JSON(w, r, map[string]any{
		"deleted": id,
	})
}
