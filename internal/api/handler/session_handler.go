package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"stillmind/backend/internal/dto"
	"stillmind/backend/internal/service"
	"stillmind/backend/pkg/response"
)

// SessionHandler serves the completed-session log.
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler creates the SessionHandler.
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// CreateSession logs a completed meditation.
// POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	session, err := h.sessionSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSessionError(c, err)
		return
	}

	response.Created(c, session)
}

// GetSession returns one session.
// GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "session id is required")
		return
	}

	session, err := h.sessionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSessionError(c, err)
		return
	}

	response.OK(c, session)
}

// ListSessions returns a user's sessions, newest first.
// GET /api/v1/sessions?user_id=xxx&limit=20
func (h *SessionHandler) ListSessions(c *gin.Context) {
	var req dto.SessionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	sessions, err := h.sessionSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleSessionError(c, err)
		return
	}

	response.OK(c, gin.H{"list": sessions})
}

// DeleteSession removes a logged session.
// DELETE /api/v1/sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "session id is required")
		return
	}

	if err := h.sessionSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleSessionError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleSessionError maps session business errors onto the envelope.
func (h *SessionHandler) handleSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserIDRequired):
		response.BadRequest(c, 12001, "user_id is required")
	case errors.Is(err, service.ErrInvalidCompletedAt):
		response.BadRequest(c, 12002, "completed_at must be RFC 3339")
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 12003, "session not found")
	default:
		response.StoreFailure(c, err)
	}
}
