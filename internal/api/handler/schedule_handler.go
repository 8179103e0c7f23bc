package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"stillmind/backend/internal/dto"
	"stillmind/backend/internal/service"
	"stillmind/backend/pkg/response"
)

// ScheduleHandler serves the schedule resource. The wire contract keeps
// every verb on the collection path: List and Delete identify targets by
// query parameter, Update carries the id inside the body.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates the ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// ListSchedules returns every schedule owned by a user.
// GET /api/v1/schedules?userId=xxx
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	schedules, err := h.scheduleSvc.List(c.Request.Context(), req.UserID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, schedules)
}

// CreateSchedule validates and persists a new schedule.
// POST /api/v1/schedules
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var payload dto.SchedulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	schedule, err := h.scheduleSvc.Create(c.Request.Context(), &payload)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, schedule)
}

// UpdateSchedule replaces an existing schedule's document.
// PUT /api/v1/schedules
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	schedule, err := h.scheduleSvc.Update(c.Request.Context(), req.ID, &req.SchedulePayload)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, schedule)
}

// DeleteSchedule removes a schedule.
// DELETE /api/v1/schedules?id=xxx
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id := c.Query("id")

	if err := h.scheduleSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, dto.DeleteScheduleResponse{Message: "Schedule deleted successfully"})
}

// handleScheduleError maps schedule business errors onto the envelope.
func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserIDRequired):
		response.BadRequest(c, 11001, "User ID is required")
	case errors.Is(err, service.ErrScheduleIDRequired):
		response.BadRequest(c, 11002, "Schedule ID is required")
	case errors.Is(err, service.ErrMissingFields):
		response.BadRequest(c, 11003, "Missing required fields")
	case errors.Is(err, service.ErrInvalidDayOfWeek):
		response.BadRequest(c, 11004, "Invalid dayOfWeek values")
	case errors.Is(err, service.ErrInvalidTimeFormat):
		response.BadRequest(c, 11005, "Time must be in HH:MM format")
	case errors.Is(err, service.ErrInvalidDuration):
		response.BadRequest(c, 11006, "Duration must be a positive number")
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, 11007, "Schedule not found")
	default:
		response.StoreFailure(c, err)
	}
}
