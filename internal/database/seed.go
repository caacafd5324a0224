package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/masindi/relief-coordination-api/internal/models"
)

// defaultCategories is the reference data the donation intake depends on.
var defaultCategories = []models.ResourceCategory{
	{Name: "Food", Description: "Non-perishable food items"},
	{Name: "Water", Description: "Bottled and purified water"},
	{Name: "Clothing", Description: "Clothing and blankets"},
	{Name: "Medical Supplies", Description: "First aid kits, medication, hygiene products"},
	{Name: "Shelter", Description: "Tents, tarpaulins, building materials"},
}

// SeedCategories inserts the default resource categories when the table is empty.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ResourceCategory{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count resource categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.ResourceCategory, len(defaultCategories))
	copy(categories, defaultCategories)
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed resource categories: %w", err)
	}
	return nil
}
