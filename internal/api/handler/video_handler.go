package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"stillmind/backend/internal/dto"
	"stillmind/backend/internal/service"
	"stillmind/backend/pkg/response"
)

// FavoriteHandler serves the bookmarked-video collection.
type FavoriteHandler struct {
	favoriteSvc service.FavoriteService
}

// NewFavoriteHandler creates the FavoriteHandler.
func NewFavoriteHandler(favoriteSvc service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteSvc: favoriteSvc}
}

// CreateFavorite bookmarks a video.
// POST /api/v1/favorites
func (h *FavoriteHandler) CreateFavorite(c *gin.Context) {
	var req dto.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	fav, err := h.favoriteSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleFavoriteError(c, err)
		return
	}

	response.Created(c, fav)
}

// ListFavorites returns a user's bookmarks, newest first.
// GET /api/v1/favorites?user_id=xxx
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	var req dto.FavoriteListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	favs, err := h.favoriteSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleFavoriteError(c, err)
		return
	}

	response.OK(c, gin.H{"list": favs})
}

// DeleteFavorite removes a bookmark.
// DELETE /api/v1/favorites/:id
func (h *FavoriteHandler) DeleteFavorite(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "favorite id is required")
		return
	}

	if err := h.favoriteSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleFavoriteError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleFavoriteError maps favorite business errors onto the envelope.
func (h *FavoriteHandler) handleFavoriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserIDRequired):
		response.BadRequest(c, 13001, "user_id is required")
	case errors.Is(err, service.ErrFavoriteExists):
		response.BadRequest(c, 13002, "video already in favorites")
	case errors.Is(err, service.ErrFavoriteNotFound):
		response.NotFound(c, 13003, "favorite video not found")
	default:
		response.StoreFailure(c, err)
	}
}
