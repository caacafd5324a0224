package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/masindi/relief-coordination-api/internal/models"
)

// IncidentDTO represents a disaster incident in API responses
type IncidentDTO struct {
	ID             uuid.UUID               `json:"id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	IncidentType   string                  `json:"incident_type"`
	Location       string                  `json:"location"`
	Latitude       *float64                `json:"latitude,omitempty"`
	Longitude      *float64                `json:"longitude,omitempty"`
	Severity       models.IncidentSeverity `json:"severity"`
	Status         models.IncidentStatus   `json:"status"`
	PeopleAffected *int                    `json:"people_affected,omitempty"`
	ImmediateNeeds string                  `json:"immediate_needs,omitempty"`
	ReportedAt     time.Time               `json:"reported_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
	Reporter       *UserDTO                `json:"reporter,omitempty"`
}

// ToIncidentDTO converts a DisasterIncident model to IncidentDTO
func ToIncidentDTO(incident models.DisasterIncident) IncidentDTO {
	dto := IncidentDTO{
		ID:             incident.ID,
		Title:          incident.Title,
		Description:    incident.Description,
		IncidentType:   incident.IncidentType,
		Location:       incident.Location,
		Latitude:       incident.Latitude,
		Longitude:      incident.Longitude,
		Severity:       incident.Severity,
		Status:         incident.Status,
		PeopleAffected: incident.PeopleAffected,
		ImmediateNeeds: incident.ImmediateNeeds,
		ReportedAt:     incident.ReportedAt,
		UpdatedAt:      incident.UpdatedAt,
	}

	// Include reporter if preloaded
	if incident.Reporter.ID != uuid.Nil {
		reporter := ToUserDTO(incident.Reporter)
		dto.Reporter = &reporter
	}

	return dto
}

// ToIncidentDTOs converts a slice of incidents
func ToIncidentDTOs(incidents []models.DisasterIncident) []IncidentDTO {
	dtos := make([]IncidentDTO, len(incidents))
	for i, incident := range incidents {
		dtos[i] = ToIncidentDTO(incident)
	}
	return dtos
}
