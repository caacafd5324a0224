package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/masindi/relief-coordination-api/internal/models"
)

// TaskDTO represents a volunteer task in API responses
type TaskDTO struct {
	ID                 uuid.UUID         `json:"id"`
	IncidentID         *uuid.UUID        `json:"incident_id,omitempty"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	TaskType           string            `json:"task_type"`
	Location           string            `json:"location"`
	RequiredVolunteers int               `json:"required_volunteers"`
	CurrentVolunteers  int               `json:"current_volunteers"`
	StartDate          time.Time         `json:"start_date"`
	EndDate            time.Time         `json:"end_date"`
	Status             models.TaskStatus `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	Incident           *IncidentDTO      `json:"incident,omitempty"`
}

// AssignmentDTO represents a volunteer assignment in API responses
type AssignmentDTO struct {
	ID             uuid.UUID               `json:"id"`
	TaskID         uuid.UUID               `json:"task_id"`
	VolunteerID    uuid.UUID               `json:"volunteer_id"`
	AssignmentDate time.Time               `json:"assignment_date"`
	Status         models.AssignmentStatus `json:"status"`
	HoursWorked    *float64                `json:"hours_worked,omitempty"`
	Notes          string                  `json:"notes,omitempty"`
	Task           *TaskDTO                `json:"task,omitempty"`
	Volunteer      *UserDTO                `json:"volunteer,omitempty"`
}

// ToTaskDTO converts a VolunteerTask model to TaskDTO
func ToTaskDTO(task models.VolunteerTask) TaskDTO {
	dto := TaskDTO{
		ID:                 task.ID,
		IncidentID:         task.IncidentID,
		Title:              task.Title,
		Description:        task.Description,
		TaskType:           task.TaskType,
		Location:           task.Location,
		RequiredVolunteers: task.RequiredVolunteers,
		CurrentVolunteers:  task.CurrentVolunteers,
		StartDate:          task.StartDate,
		EndDate:            task.EndDate,
		Status:             task.Status,
		CreatedAt:          task.CreatedAt,
		UpdatedAt:          task.UpdatedAt,
	}

	// Include incident if preloaded
	if task.Incident != nil && task.Incident.ID != uuid.Nil {
		incident := ToIncidentDTO(*task.Incident)
		dto.Incident = &incident
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.VolunteerTask) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

// ToAssignmentDTO converts a VolunteerAssignment model to AssignmentDTO
func ToAssignmentDTO(assignment models.VolunteerAssignment) AssignmentDTO {
	dto := AssignmentDTO{
		ID:             assignment.ID,
		TaskID:         assignment.TaskID,
		VolunteerID:    assignment.VolunteerID,
		AssignmentDate: assignment.AssignmentDate,
		Status:         assignment.Status,
		HoursWorked:    assignment.HoursWorked,
		Notes:          assignment.Notes,
	}

	// Include task and volunteer if preloaded
	if assignment.Task.ID != uuid.Nil {
		task := ToTaskDTO(assignment.Task)
		dto.Task = &task
	}
	if assignment.Volunteer.ID != uuid.Nil {
		volunteer := ToUserDTO(assignment.Volunteer)
		dto.Volunteer = &volunteer
	}

	return dto
}

// ToAssignmentDTOs converts a slice of assignments
func ToAssignmentDTOs(assignments []models.VolunteerAssignment) []AssignmentDTO {
	dtos := make([]AssignmentDTO, len(assignments))
	for i, assignment := range assignments {
		dtos[i] = ToAssignmentDTO(assignment)
	}
	return dtos
}
