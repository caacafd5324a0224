package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masindi/relief-coordination-api/internal/models"
	"github.com/masindi/relief-coordination-api/internal/repository"
	"github.com/masindi/relief-coordination-api/internal/utils"
)

var (
	ErrIncidentNotFound = errors.New("incident not found")
	ErrInvalidSeverity  = errors.New("invalid severity level")
)

// IncidentService handles disaster incident reporting and queries.
type IncidentService struct {
	incidentRepo repository.IncidentRepository
}

// NewIncidentService creates a new IncidentService.
func NewIncidentService(incidentRepo repository.IncidentRepository) *IncidentService {
	return &IncidentService{
		incidentRepo: incidentRepo,
	}
}

// ReportIncidentInput represents input for reporting an incident.
type ReportIncidentInput struct {
	Title          string
	Description    string
	IncidentType   string
	Location       string
	Latitude       *float64
	Longitude      *float64
	Severity       models.IncidentSeverity
	PeopleAffected *int
	ImmediateNeeds string
}

// Report persists a new incident on behalf of the reporting user. Status
// starts at Reported; reported-at and updated-at are stamped now.
func (s *IncidentService) Report(input ReportIncidentInput, reporterID uuid.UUID) (*models.DisasterIncident, error) {
	severity := input.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}
	if !severity.Valid() {
		return nil, ErrInvalidSeverity
	}
	if input.PeopleAffected != nil && *input.PeopleAffected < 0 {
		return nil, fmt.Errorf("people affected cannot be negative")
	}

	now := time.Now()
	incident := &models.DisasterIncident{
		ReporterID:     reporterID,
		Title:          input.Title,
		Description:    input.Description,
		IncidentType:   input.IncidentType,
		Location:       input.Location,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Severity:       severity,
		Status:         models.IncidentStatusReported,
		PeopleAffected: input.PeopleAffected,
		ImmediateNeeds: input.ImmediateNeeds,
		ReportedAt:     now,
		UpdatedAt:      now,
	}

	if err := s.incidentRepo.Create(incident); err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}

	return incident, nil
}

// List returns all incidents newest first with the reporter joined.
func (s *IncidentService) List(params utils.PaginationParams) ([]models.DisasterIncident, int64, error) {
	incidents, total, err := s.incidentRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list incidents: %w", err)
	}
	return incidents, total, nil
}

// Get returns one incident with the reporter joined.
func (s *IncidentService) Get(id uuid.UUID) (*models.DisasterIncident, error) {
	incident, err := s.incidentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to find incident: %w", err)
	}
	return incident, nil
}
