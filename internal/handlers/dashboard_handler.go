package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wealthdesk/internal/services"
)

// DashboardHandler serves the landing page overview
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles the dashboard overview
// @Summary     Dashboard
// @Description Client counts by status, pending tasks, five newest clients and five soonest open tasks
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Dashboard
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, err := h.dashboardService.GetDashboard()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
