package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masindi/relief-coordination-api/internal/constants"
	"github.com/masindi/relief-coordination-api/internal/dto"
	apierrors "github.com/masindi/relief-coordination-api/internal/errors"
	"github.com/masindi/relief-coordination-api/internal/middleware"
	"github.com/masindi/relief-coordination-api/internal/models"
	"github.com/masindi/relief-coordination-api/internal/services"
	"github.com/masindi/relief-coordination-api/internal/utils"
)

// IncidentHandler coordinates incident reporting and queries.
type IncidentHandler struct {
	incidentService *services.IncidentService
}

// NewIncidentHandler creates a new IncidentHandler.
func NewIncidentHandler(incidentService *services.IncidentService) *IncidentHandler {
	return &IncidentHandler{
		incidentService: incidentService,
	}
}

// Report records a new incident reported by the authenticated user.
func (h *IncidentHandler) Report(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, constants.LoginPath)
		return
	}

	type ReportRequest struct {
		Title          string   `form:"title" json:"title" binding:"required,max=255"`
		Description    string   `form:"description" json:"description" binding:"required"`
		IncidentType   string   `form:"incident_type" json:"incident_type" binding:"required"`
		Location       string   `form:"location" json:"location" binding:"required"`
		Latitude       *float64 `form:"latitude" json:"latitude"`
		Longitude      *float64 `form:"longitude" json:"longitude"`
		Severity       string   `form:"severity" json:"severity"`
		PeopleAffected *int     `form:"people_affected" json:"people_affected" binding:"omitempty,gte=0"`
		ImmediateNeeds string   `form:"immediate_needs" json:"immediate_needs"`
	}

	var req ReportRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid incident report", err.Error())
		return
	}

	_, err := h.incidentService.Report(services.ReportIncidentInput{
		Title:          req.Title,
		Description:    req.Description,
		IncidentType:   req.IncidentType,
		Location:       req.Location,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Severity:       models.IncidentSeverity(req.Severity),
		PeopleAffected: req.PeopleAffected,
		ImmediateNeeds: req.ImmediateNeeds,
	}, principal.ID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSeverity) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to report incident")
		return
	}

	addFlash(c, flashSuccess, "Incident reported successfully!")
	c.Redirect(http.StatusFound, "/")
}

// List returns all incidents newest first.
func (h *IncidentHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	incidents, total, err := h.incidentService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch incidents")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"incidents": dto.ToIncidentDTOs(incidents),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// Details returns one incident, 404 when it does not exist.
func (h *IncidentHandler) Details(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid incident ID")
		return
	}

	incident, err := h.incidentService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrIncidentNotFound) {
			apierrors.NotFound(c, "Incident not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch incident")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncidentDTO(*incident))
}
