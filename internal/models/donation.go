package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationStatus string

const (
	DonationStatusPending    DonationStatus = "Pending"
	DonationStatusProcessing DonationStatus = "Processing"
	DonationStatusReceived   DonationStatus = "Received"
)

type Donation struct {
	ID           uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	DonorID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"donor_id"`
	CategoryID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	ItemName     string         `gorm:"type:varchar(255);not null" json:"item_name"`
	Quantity     int            `gorm:"not null;check:quantity >= 1" json:"quantity"`
	Description  string         `gorm:"type:text" json:"description"`
	DonationType string         `gorm:"type:varchar(100);not null" json:"donation_type"`
	Status       DonationStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	DonatedAt    time.Time      `gorm:"index" json:"donated_at"`
	ReceivedAt   *time.Time     `json:"received_at"`

	// Relations
	Donor    User             `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Category ResourceCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
