package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "Open"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// VolunteerTask is a unit of volunteer work, optionally tied to an incident.
// current_volunteers never exceeds required_volunteers; the task flips to
// InProgress exactly when the count reaches the requirement.
type VolunteerTask struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	IncidentID         *uuid.UUID `gorm:"type:uuid;index" json:"incident_id"`
	Title              string     `gorm:"type:varchar(255);not null" json:"title"`
	Description        string     `gorm:"type:text;not null" json:"description"`
	TaskType           string     `gorm:"type:varchar(100);not null" json:"task_type"`
	Location           string     `gorm:"type:varchar(255);not null" json:"location"`
	RequiredVolunteers int        `gorm:"not null;check:required_volunteers >= 1" json:"required_volunteers"`
	CurrentVolunteers  int        `gorm:"not null;default:0;check:current_volunteers >= 0 AND current_volunteers <= required_volunteers" json:"current_volunteers"`
	StartDate          time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate            time.Time  `gorm:"not null" json:"end_date"`
	Status             TaskStatus `gorm:"type:varchar(20);not null;default:'Open';index" json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Relations
	Incident    *DisasterIncident     `gorm:"foreignKey:IncidentID" json:"incident,omitempty"`
	Assignments []VolunteerAssignment `gorm:"foreignKey:TaskID" json:"assignments,omitempty"`
}

func (t *VolunteerTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
