package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/weatherly/weatherly-backend-go/internal/service"
	"github.com/weatherly/weatherly-backend-go/pkg/response"
)

// FavoriteHandler handles HTTP requests for favorite cities
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

type toggleFavoriteRequest struct {
	City string `json:"city" binding:"required"`
}

// List handles GET /favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	favorites, err := h.favoriteService.List()
	if err != nil {
		response.InternalError(c, "failed to load favorites", err)
		return
	}
	response.Success(c, favorites)
}

// Toggle handles POST /favorites/toggle
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	var body toggleFavoriteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	favorited, err := h.favoriteService.Toggle(body.City)
	if err != nil {
		response.InternalError(c, "failed to toggle favorite", err)
		return
	}
	response.Success(c, gin.H{"city": body.City, "favorited": favorited})
}

// Remove handles DELETE /favorites/:city
func (h *FavoriteHandler) Remove(c *gin.Context) {
	city := c.Param("city")
	if err := h.favoriteService.Remove(city); err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, gin.H{"city": city})
}
