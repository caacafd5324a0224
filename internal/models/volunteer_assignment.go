package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "Assigned"
	AssignmentStatusCompleted AssignmentStatus = "Completed"
)

// VolunteerAssignment binds one volunteer to one task. The composite unique
// index enforces at most one assignment per (task, volunteer) pair.
type VolunteerAssignment struct {
	ID             uuid.UUID        `gorm:"type:uuid;primarykey" json:"id"`
	TaskID         uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_assignments_task_volunteer" json:"task_id"`
	VolunteerID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_assignments_task_volunteer" json:"volunteer_id"`
	AssignmentDate time.Time        `gorm:"index" json:"assignment_date"`
	Status         AssignmentStatus `gorm:"type:varchar(20);not null;default:'Assigned'" json:"status"`
	HoursWorked    *float64         `gorm:"check:hours_worked >= 0 AND hours_worked <= 999.99" json:"hours_worked"`
	Notes          string           `gorm:"type:text" json:"notes"`

	// Relations
	Task      VolunteerTask `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Volunteer User          `gorm:"foreignKey:VolunteerID" json:"volunteer,omitempty"`
}

func (a *VolunteerAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
