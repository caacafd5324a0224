package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masindi/relief-coordination-api/internal/dto"
	apierrors "github.com/masindi/relief-coordination-api/internal/errors"
	"github.com/masindi/relief-coordination-api/internal/services"
)

// HomeHandler serves the dashboard aggregates.
type HomeHandler struct {
	dashboardService *services.DashboardService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(dashboardService *services.DashboardService) *HomeHandler {
	return &HomeHandler{
		dashboardService: dashboardService,
	}
}

// Index returns the dashboard: entity counts, the most recent incidents, and
// any pending flash messages from a preceding redirect.
func (h *HomeHandler) Index(c *gin.Context) {
	summary, err := h.dashboardService.Summary()
	if err != nil {
		apierrors.InternalError(c, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_incidents":   summary.TotalIncidents,
		"active_volunteers": summary.ActiveVolunteers,
		"total_donations":   summary.TotalDonations,
		"open_tasks":        summary.OpenTasks,
		"recent_incidents":  dto.ToIncidentDTOs(summary.RecentIncidents),
		"messages":          takeFlashes(c),
	})
}
