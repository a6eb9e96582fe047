package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/weatherly/weatherly-backend-go/internal/models"
	"github.com/weatherly/weatherly-backend-go/internal/service"
	"github.com/weatherly/weatherly-backend-go/pkg/response"
)

const dateLayout = "2006-01-02"

// TripHandler handles HTTP requests for trip planning
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// Plan handles POST /trips/plan
func (h *TripHandler) Plan(c *gin.Context) {
	var body models.PlanTripRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	start, err := time.Parse(dateLayout, body.StartDate)
	if err != nil {
		response.BadRequest(c, "invalid start_date, expected YYYY-MM-DD", err)
		return
	}
	end, err := time.Parse(dateLayout, body.EndDate)
	if err != nil {
		response.BadRequest(c, "invalid end_date, expected YYYY-MM-DD", err)
		return
	}
	if end.Before(start) {
		response.BadRequest(c, "end_date must not be before start_date", nil)
		return
	}

	req := models.TripRequest{
		Origin:      body.Origin,
		Destination: body.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      models.BudgetTier(body.Budget),
	}
	for _, p := range body.Preferences {
		req.Preferences = append(req.Preferences, models.PreferenceTag(p))
	}

	plan, err := h.tripService.Plan(c.Request.Context(), req)
	if err != nil {
		response.InternalError(c, "failed to plan trip", err)
		return
	}
	response.Success(c, plan)
}

// History handles GET /trips
func (h *TripHandler) History(c *gin.Context) {
	trips, err := h.tripService.History()
	if err != nil {
		response.InternalError(c, "failed to load trip history", err)
		return
	}
	response.Success(c, trips)
}

// HistoryPlan handles GET /trips/:id
func (h *TripHandler) HistoryPlan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid trip id", err)
		return
	}

	plan, err := h.tripService.HistoryPlan(id)
	if err != nil {
		response.InternalError(c, "failed to load trip", err)
		return
	}
	if plan == nil {
		response.NotFound(c, "trip not found")
		return
	}
	response.Success(c, plan)
}
