package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masindi/relief-coordination-api/internal/models"
)

var (
	// ErrAlreadyAssigned is returned when the volunteer already holds an assignment on the task.
	ErrAlreadyAssigned = errors.New("task repository: volunteer already assigned to task")
	// ErrTaskFull is returned when the task has no open volunteer slots left.
	ErrTaskFull = errors.New("task repository: task has no open slots")
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.VolunteerTask) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uuid.UUID, preload ...string) (*models.VolunteerTask, error) {
	var task models.VolunteerTask
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListOpen retrieves Open tasks starting strictly after the given time
func (r *GormTaskRepository) ListOpen(after time.Time) ([]models.VolunteerTask, error) {
	var tasks []models.VolunteerTask
	err := r.db.
		Preload("Incident").
		Where("status = ? AND start_date > ?", models.TaskStatusOpen, after).
		Order("start_date ASC").
		Find(&tasks).Error
	return tasks, err
}

// CountOpen counts tasks in the Open status
func (r *GormTaskRepository) CountOpen() (int64, error) {
	var count int64
	err := r.db.Model(&models.VolunteerTask{}).
		Where("status = ?", models.TaskStatusOpen).
		Count(&count).Error
	return count, err
}

// Join assigns a volunteer to a task in a single transaction. The capacity
// check and increment are one guarded UPDATE whose affected-row count is the
// success signal, so two racing joins cannot both claim the last slot.
func (r *GormTaskRepository) Join(taskID, volunteerID uuid.UUID, at time.Time) (*models.VolunteerAssignment, error) {
	assignment := &models.VolunteerAssignment{
		TaskID:         taskID,
		VolunteerID:    volunteerID,
		AssignmentDate: at,
		Status:         models.AssignmentStatusAssigned,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var task models.VolunteerTask
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			return err
		}

		var existing int64
		err := tx.Model(&models.VolunteerAssignment{}).
			Where("task_id = ? AND volunteer_id = ?", taskID, volunteerID).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyAssigned
		}

		res := tx.Model(&models.VolunteerTask{}).
			Where("id = ? AND current_volunteers < required_volunteers", taskID).
			Updates(map[string]interface{}{
				"current_volunteers": gorm.Expr("current_volunteers + 1"),
				"updated_at":         at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTaskFull
		}

		// The task flips to InProgress exactly when the count reaches the
		// requirement; committed together with the increment above.
		err = tx.Model(&models.VolunteerTask{}).
			Where("id = ? AND current_volunteers >= required_volunteers AND status = ?",
				taskID, models.TaskStatusOpen).
			Update("status", models.TaskStatusInProgress).Error
		if err != nil {
			return err
		}

		return tx.Create(assignment).Error
	})
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

// FindAssignmentByID finds an assignment by ID with the task joined
func (r *GormTaskRepository) FindAssignmentByID(id uuid.UUID) (*models.VolunteerAssignment, error) {
	var assignment models.VolunteerAssignment
	err := r.db.
		Preload("Task").
		First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListAssignmentsByVolunteer retrieves one volunteer's assignments newest first
func (r *GormTaskRepository) ListAssignmentsByVolunteer(volunteerID uuid.UUID) ([]models.VolunteerAssignment, error) {
	var assignments []models.VolunteerAssignment
	err := r.db.
		Preload("Task").
		Preload("Task.Incident").
		Where("volunteer_id = ?", volunteerID).
		Order("assignment_date DESC").
		Find(&assignments).Error
	return assignments, err
}

// UpdateAssignment persists field mutations on an assignment
func (r *GormTaskRepository) UpdateAssignment(assignment *models.VolunteerAssignment) error {
	return r.db.Save(assignment).Error
}
