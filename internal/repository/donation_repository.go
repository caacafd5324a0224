package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masindi/relief-coordination-api/internal/database"
	"github.com/masindi/relief-coordination-api/internal/models"
	"github.com/masindi/relief-coordination-api/internal/utils"
)

// GormDonationRepository is a GORM implementation of DonationRepository
type GormDonationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &GormDonationRepository{db: db}
}

// Create creates a new donation
func (r *GormDonationRepository) Create(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

// FindByID finds a donation by ID with donor and category joined
func (r *GormDonationRepository) FindByID(id uuid.UUID) (*models.Donation, error) {
	var donation models.Donation
	err := r.db.
		Preload("Donor").
		Preload("Category").
		First(&donation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// ListByDonor retrieves one donor's donations newest first with the category joined
func (r *GormDonationRepository) ListByDonor(donorID uuid.UUID) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.
		Preload("Category").
		Where("donor_id = ?", donorID).
		Order("donated_at DESC").
		Find(&donations).Error
	return donations, err
}

// ListAll retrieves all donations newest first with donor and category joined
func (r *GormDonationRepository) ListAll(params utils.PaginationParams) ([]models.Donation, int64, error) {
	var donations []models.Donation

	var total int64
	if err := r.db.Model(&models.Donation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("Donor").
		Preload("Category").
		Order("donated_at DESC").
		Scopes(database.Paginate(params)).
		Find(&donations).Error
	if err != nil {
		return nil, 0, err
	}

	return donations, total, nil
}

// SumQuantityByDonor totals the donated quantity for one donor
func (r *GormDonationRepository) SumQuantityByDonor(donorID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Donation{}).
		Where("donor_id = ?", donorID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

// Count counts all donations
func (r *GormDonationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Donation{}).Count(&count).Error
	return count, err
}

// Update persists field mutations on a donation
func (r *GormDonationRepository) Update(donation *models.Donation) error {
	return r.db.Save(donation).Error
}
