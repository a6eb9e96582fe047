package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/weatherly/weatherly-backend-go/internal/service"
	"github.com/weatherly/weatherly-backend-go/pkg/response"
)

// DashboardHandler handles HTTP requests for the dashboard summary
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		response.InternalError(c, "failed to load stats", err)
		return
	}
	response.Success(c, stats)
}

// RecentSearches handles GET /dashboard/searches
func (h *DashboardHandler) RecentSearches(c *gin.Context) {
	searches, err := h.dashboardService.RecentSearches()
	if err != nil {
		response.InternalError(c, "failed to load recent searches", err)
		return
	}
	response.Success(c, searches)
}
