package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/weatherly/weatherly-backend-go/internal/service"
	"github.com/weatherly/weatherly-backend-go/pkg/response"
)

// WeatherHandler handles HTTP requests for weather lookups
type WeatherHandler struct {
	weatherService *service.WeatherService
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(weatherService *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

// Current handles GET /weather?city=X or GET /weather?lat=..&lon=..
func (h *WeatherHandler) Current(c *gin.Context) {
	if city := c.Query("city"); city != "" {
		current, err := h.weatherService.CurrentByCity(c.Request.Context(), city)
		if err != nil {
			response.BadGateway(c, "weather lookup failed", err)
			return
		}
		response.Success(c, current)
		return
	}

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr == "" || lonStr == "" {
		response.BadRequest(c, "city or lat/lon query parameters required", nil)
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		response.BadRequest(c, "invalid lat", err)
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		response.BadRequest(c, "invalid lon", err)
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		response.Error(c, http.StatusBadRequest, "coordinates out of range", nil)
		return
	}

	current, err := h.weatherService.CurrentByCoords(c.Request.Context(), lat, lon)
	if err != nil {
		response.BadGateway(c, "weather lookup failed", err)
		return
	}
	response.Success(c, current)
}

// Forecast handles GET /forecast?city=X
func (h *WeatherHandler) Forecast(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		response.BadRequest(c, "city query parameter required", nil)
		return
	}

	forecast, err := h.weatherService.ForecastByCity(c.Request.Context(), city)
	if err != nil {
		response.BadGateway(c, "forecast lookup failed", err)
		return
	}
	response.Success(c, forecast)
}
