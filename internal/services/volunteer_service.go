package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masindi/relief-coordination-api/internal/constants"
	"github.com/masindi/relief-coordination-api/internal/models"
	"github.com/masindi/relief-coordination-api/internal/repository"
)

var (
	ErrTaskNotFound           = errors.New("task not found")
	ErrAssignmentNotFound     = errors.New("assignment not found")
	ErrAlreadyAssigned        = errors.New("volunteer is already assigned to this task")
	ErrTaskFull               = errors.New("task is already full")
	ErrNotAssignmentVolunteer = errors.New("only the assigned volunteer or an admin can log hours")
	ErrInvalidHours           = errors.New("hours worked out of range")
	ErrInvalidVolunteerCount  = errors.New("required volunteers must be at least 1")
	ErrTaskDatesInvalid       = errors.New("end date must not precede start date")
)

// VolunteerService handles volunteer tasks and assignments.
type VolunteerService struct {
	taskRepo     repository.TaskRepository
	incidentRepo repository.IncidentRepository
}

// NewVolunteerService creates a new VolunteerService.
func NewVolunteerService(taskRepo repository.TaskRepository, incidentRepo repository.IncidentRepository) *VolunteerService {
	return &VolunteerService{
		taskRepo:     taskRepo,
		incidentRepo: incidentRepo,
	}
}

// CreateTaskInput represents input for creating a volunteer task.
type CreateTaskInput struct {
	IncidentID         *uuid.UUID
	Title              string
	Description        string
	TaskType           string
	Location           string
	RequiredVolunteers int
	StartDate          time.Time
	EndDate            time.Time
}

// CreateTask creates a new task in the Open status, optionally linked to an
// incident.
func (s *VolunteerService) CreateTask(input CreateTaskInput) (*models.VolunteerTask, error) {
	if input.RequiredVolunteers < 1 {
		return nil, ErrInvalidVolunteerCount
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, ErrTaskDatesInvalid
	}
	if input.IncidentID != nil {
		if _, err := s.incidentRepo.FindByID(*input.IncidentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrIncidentNotFound
			}
			return nil, fmt.Errorf("failed to check incident: %w", err)
		}
	}

	task := &models.VolunteerTask{
		IncidentID:         input.IncidentID,
		Title:              input.Title,
		Description:        input.Description,
		TaskType:           input.TaskType,
		Location:           input.Location,
		RequiredVolunteers: input.RequiredVolunteers,
		CurrentVolunteers:  0,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		Status:             models.TaskStatusOpen,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListOpenTasks returns Open tasks whose start date is strictly in the future,
// soonest first.
func (s *VolunteerService) ListOpenTasks() ([]models.VolunteerTask, error) {
	tasks, err := s.taskRepo.ListOpen(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list open tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns one task with its incident and assignments joined.
func (s *VolunteerService) GetTask(id uuid.UUID) (*models.VolunteerTask, error) {
	task, err := s.taskRepo.FindByID(id, "Incident", "Assignments", "Assignments.Volunteer")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// JoinTask assigns the volunteer to the task. The repository performs the
// capacity check, increment, and status flip atomically.
func (s *VolunteerService) JoinTask(taskID, volunteerID uuid.UUID) (*models.VolunteerAssignment, error) {
	assignment, err := s.taskRepo.Join(taskID, volunteerID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrTaskNotFound
		case errors.Is(err, repository.ErrAlreadyAssigned):
			return nil, ErrAlreadyAssigned
		case errors.Is(err, repository.ErrTaskFull):
			return nil, ErrTaskFull
		default:
			return nil, fmt.Errorf("failed to join task: %w", err)
		}
	}

	return assignment, nil
}

// MyAssignments returns the volunteer's assignments newest first, with each
// task and its incident joined.
func (s *VolunteerService) MyAssignments(volunteerID uuid.UUID) ([]models.VolunteerAssignment, error) {
	assignments, err := s.taskRepo.ListAssignmentsByVolunteer(volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// UpdateHoursInput represents input for logging hours on an assignment.
type UpdateHoursInput struct {
	AssignmentID uuid.UUID
	HoursWorked  float64
	Notes        string
	ActorID      uuid.UUID
	ActorRole    models.UserRole
}

// UpdateHours records hours worked and completes the assignment. Only the
// assigned volunteer or an admin may log hours.
func (s *VolunteerService) UpdateHours(input UpdateHoursInput) (*models.VolunteerAssignment, error) {
	if input.HoursWorked < 0 || input.HoursWorked > constants.MaxHoursWorked {
		return nil, ErrInvalidHours
	}

	assignment, err := s.taskRepo.FindAssignmentByID(input.AssignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	if assignment.VolunteerID != input.ActorID && input.ActorRole != models.RoleAdmin {
		return nil, ErrNotAssignmentVolunteer
	}

	hours := input.HoursWorked
	assignment.HoursWorked = &hours
	assignment.Notes = input.Notes
	assignment.Status = models.AssignmentStatusCompleted

	if err := s.taskRepo.UpdateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	return assignment, nil
}
