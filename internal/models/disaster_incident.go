package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IncidentSeverity string

const (
	SeverityLow      IncidentSeverity = "Low"
	SeverityMedium   IncidentSeverity = "Medium"
	SeverityHigh     IncidentSeverity = "High"
	SeverityCritical IncidentSeverity = "Critical"
)

func (s IncidentSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

type IncidentStatus string

const (
	IncidentStatusReported   IncidentStatus = "Reported"
	IncidentStatusVerified   IncidentStatus = "Verified"
	IncidentStatusInProgress IncidentStatus = "InProgress"
	IncidentStatusResolved   IncidentStatus = "Resolved"
)

type DisasterIncident struct {
	ID             uuid.UUID        `gorm:"type:uuid;primarykey" json:"id"`
	ReporterID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"reporter_id"`
	Title          string           `gorm:"type:varchar(255);not null" json:"title"`
	Description    string           `gorm:"type:text;not null" json:"description"`
	IncidentType   string           `gorm:"type:varchar(100);not null" json:"incident_type"`
	Location       string           `gorm:"type:varchar(255);not null" json:"location"`
	Latitude       *float64         `json:"latitude"`
	Longitude      *float64         `json:"longitude"`
	Severity       IncidentSeverity `gorm:"type:varchar(20);not null;default:'Medium'" json:"severity"`
	Status         IncidentStatus   `gorm:"type:varchar(20);not null;default:'Reported'" json:"status"`
	PeopleAffected *int             `gorm:"check:people_affected >= 0" json:"people_affected"`
	ImmediateNeeds string           `gorm:"type:text" json:"immediate_needs"`
	ReportedAt     time.Time        `gorm:"index" json:"reported_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	// Relations
	Reporter User            `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	Tasks    []VolunteerTask `gorm:"foreignKey:IncidentID" json:"tasks,omitempty"`
}

func (i *DisasterIncident) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
