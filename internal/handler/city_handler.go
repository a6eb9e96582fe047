package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/weatherly/weatherly-backend-go/internal/service"
	"github.com/weatherly/weatherly-backend-go/pkg/response"
)

// CityHandler handles HTTP requests for city suggestions
type CityHandler struct {
	cityService *service.CityService
}

// NewCityHandler creates a new city handler
func NewCityHandler(cityService *service.CityService) *CityHandler {
	return &CityHandler{cityService: cityService}
}

// Suggest handles GET /cities?q=X&limit=N
func (h *CityHandler) Suggest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))
	cities := h.cityService.Suggest(c.Query("q"), limit)
	response.Success(c, cities)
}
