package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masindi/relief-coordination-api/internal/constants"
	"github.com/masindi/relief-coordination-api/internal/dto"
	apierrors "github.com/masindi/relief-coordination-api/internal/errors"
	"github.com/masindi/relief-coordination-api/internal/middleware"
	"github.com/masindi/relief-coordination-api/internal/services"
)

// VolunteerHandler coordinates volunteer tasks and assignments.
type VolunteerHandler struct {
	volunteerService *services.VolunteerService
}

// NewVolunteerHandler creates a new VolunteerHandler.
func NewVolunteerHandler(volunteerService *services.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerService: volunteerService,
	}
}

// Tasks returns Open tasks starting in the future, soonest first.
func (h *VolunteerHandler) Tasks(c *gin.Context) {
	tasks, err := h.volunteerService.ListOpenTasks()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks),
	})
}

// TaskDetails returns one task, 404 when it does not exist. Pending flash
// messages from a failed join land here.
func (h *VolunteerHandler) TaskDetails(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.volunteerService.GetTask(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":     dto.ToTaskDTO(*task),
		"messages": takeFlashes(c),
	})
}

// JoinTask assigns the authenticated volunteer to a task. Domain failures
// flash an error and send the user back to the task; success lands on the
// assignment list.
func (h *VolunteerHandler) JoinTask(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, constants.LoginPath)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	_, err = h.volunteerService.JoinTask(id, principal.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apierrors.NotFound(c, "Task not found")
		case errors.Is(err, services.ErrAlreadyAssigned):
			addFlash(c, flashError, "You are already assigned to this task.")
			c.Redirect(http.StatusFound, "/volunteer/task-details/"+id.String())
		case errors.Is(err, services.ErrTaskFull):
			addFlash(c, flashError, "This task is already full.")
			c.Redirect(http.StatusFound, "/volunteer/task-details/"+id.String())
		default:
			apierrors.InternalError(c, "Failed to join task")
		}
		return
	}

	addFlash(c, flashSuccess, "Successfully joined the task!")
	c.Redirect(http.StatusFound, "/volunteer/my-assignments")
}

// MyAssignments returns the authenticated volunteer's assignments newest first.
func (h *VolunteerHandler) MyAssignments(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, constants.LoginPath)
		return
	}

	assignments, err := h.volunteerService.MyAssignments(principal.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch assignments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": dto.ToAssignmentDTOs(assignments),
		"messages":    takeFlashes(c),
	})
}

// UpdateHours records hours worked on an assignment and completes it. The
// caller must be the assigned volunteer or an admin.
func (h *VolunteerHandler) UpdateHours(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, constants.LoginPath)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid assignment ID")
		return
	}

	// Pointer so a logged zero survives the required check.
	type UpdateHoursRequest struct {
		HoursWorked *float64 `form:"hours_worked" json:"hours_worked" binding:"required,gte=0,lte=999.99"`
		Notes       string   `form:"notes" json:"notes"`
	}

	var req UpdateHoursRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid hours form", err.Error())
		return
	}

	_, err = h.volunteerService.UpdateHours(services.UpdateHoursInput{
		AssignmentID: id,
		HoursWorked:  *req.HoursWorked,
		Notes:        req.Notes,
		ActorID:      principal.ID,
		ActorRole:    principal.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssignmentNotFound):
			apierrors.NotFound(c, "Assignment not found")
		case errors.Is(err, services.ErrNotAssignmentVolunteer):
			apierrors.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrInvalidHours):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update hours")
		}
		return
	}

	addFlash(c, flashSuccess, "Hours updated successfully!")
	c.Redirect(http.StatusFound, "/volunteer/my-assignments")
}

// CreateTask creates a new volunteer task. Admin only.
func (h *VolunteerHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		IncidentID         string    `form:"incident_id" json:"incident_id" binding:"omitempty,uuid"`
		Title              string    `form:"title" json:"title" binding:"required,max=255"`
		Description        string    `form:"description" json:"description" binding:"required"`
		TaskType           string    `form:"task_type" json:"task_type" binding:"required"`
		Location           string    `form:"location" json:"location" binding:"required"`
		RequiredVolunteers int       `form:"required_volunteers" json:"required_volunteers" binding:"required,gte=1"`
		StartDate          time.Time `form:"start_date" json:"start_date" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
		EndDate            time.Time `form:"end_date" json:"end_date" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid task form", err.Error())
		return
	}

	var incidentID *uuid.UUID
	if req.IncidentID != "" {
		parsed, err := uuid.Parse(req.IncidentID)
		if err != nil {
			apierrors.BadRequest(c, "Invalid incident ID")
			return
		}
		incidentID = &parsed
	}

	task, err := h.volunteerService.CreateTask(services.CreateTaskInput{
		IncidentID:         incidentID,
		Title:              req.Title,
		Description:        req.Description,
		TaskType:           req.TaskType,
		Location:           req.Location,
		RequiredVolunteers: req.RequiredVolunteers,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidVolunteerCount),
			errors.Is(err, services.ErrTaskDatesInvalid):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrIncidentNotFound):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create task")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}
