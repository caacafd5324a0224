package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceCategory is reference data for classifying donations.
type ResourceCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	// Relations
	Donations []Donation `gorm:"foreignKey:CategoryID" json:"-"`
}

func (c *ResourceCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
