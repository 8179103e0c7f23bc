package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"stillmind/backend/internal/dto"
	"stillmind/backend/internal/service"
	"stillmind/backend/pkg/response"
)

// UserHandler serves user profiles and preferences.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetUser returns one profile.
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "user id is required")
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// UpdatePreferences updates a user's settings document.
// PUT /api/v1/users/:id/preferences
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "user id is required")
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	user, err := h.userSvc.UpdatePreferences(c.Request.Context(), id, &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// handleUserError maps user business errors onto the envelope.
func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 14001, "user not found")
	case errors.Is(err, service.ErrInvalidTimeFormat):
		response.BadRequest(c, 14002, "reminder_time must be in HH:MM format")
	default:
		response.StoreFailure(c, err)
	}
}
