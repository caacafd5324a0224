package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/masindi/relief-coordination-api/internal/models"
)

// GormCategoryRepository is a GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List retrieves all categories ordered by name
func (r *GormCategoryRepository) List() ([]models.ResourceCategory, error) {
	var categories []models.ResourceCategory
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// FindByID finds a category by ID
func (r *GormCategoryRepository) FindByID(id uuid.UUID) (*models.ResourceCategory, error) {
	var category models.ResourceCategory
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
