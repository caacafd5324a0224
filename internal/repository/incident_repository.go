package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masindi/relief-coordination-api/internal/database"
	"github.com/masindi/relief-coordination-api/internal/models"
	"github.com/masindi/relief-coordination-api/internal/utils"
)

// GormIncidentRepository is a GORM implementation of IncidentRepository
type GormIncidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository creates a new IncidentRepository
func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &GormIncidentRepository{db: db}
}

// Create creates a new incident
func (r *GormIncidentRepository) Create(incident *models.DisasterIncident) error {
	return r.db.Create(incident).Error
}

// FindByID finds an incident by ID with the reporter joined
func (r *GormIncidentRepository) FindByID(id uuid.UUID) (*models.DisasterIncident, error) {
	var incident models.DisasterIncident
	if err := r.db.Preload("Reporter").First(&incident, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &incident, nil
}

// List retrieves incidents newest first with the reporter joined
func (r *GormIncidentRepository) List(params utils.PaginationParams) ([]models.DisasterIncident, int64, error) {
	var incidents []models.DisasterIncident

	var total int64
	if err := r.db.Model(&models.DisasterIncident{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("Reporter").
		Order("reported_at DESC").
		Scopes(database.Paginate(params)).
		Find(&incidents).Error
	if err != nil {
		return nil, 0, err
	}

	return incidents, total, nil
}

// ListRecent retrieves the most recently reported incidents
func (r *GormIncidentRepository) ListRecent(limit int) ([]models.DisasterIncident, error) {
	var incidents []models.DisasterIncident
	err := r.db.
		Order("reported_at DESC").
		Limit(limit).
		Find(&incidents).Error
	return incidents, err
}

// Count counts all incidents
func (r *GormIncidentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.DisasterIncident{}).Count(&count).Error
	return count, err
}
