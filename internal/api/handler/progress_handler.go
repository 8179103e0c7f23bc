package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"stillmind/backend/internal/service"
	"stillmind/backend/pkg/response"
)

// ProgressHandler serves computed meditation progress.
type ProgressHandler struct {
	progressSvc service.ProgressService
}

// NewProgressHandler creates the ProgressHandler.
func NewProgressHandler(progressSvc service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressSvc: progressSvc}
}

// GetProgress returns totals, streaks and achievements for a user.
// GET /api/v1/progress?user_id=xxx
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID := c.Query("user_id")

	progress, err := h.progressSvc.GetProgress(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserIDRequired) {
			response.BadRequest(c, 15001, "user_id is required")
			return
		}
		response.StoreFailure(c, err)
		return
	}

	response.OK(c, progress)
}
