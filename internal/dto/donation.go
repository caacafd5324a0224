package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/masindi/relief-coordination-api/internal/models"
)

// CategoryDTO represents a resource category in API responses
type CategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// DonationDTO represents a donation in API responses
type DonationDTO struct {
	ID           uuid.UUID             `json:"id"`
	ItemName     string                `json:"item_name"`
	Quantity     int                   `json:"quantity"`
	Description  string                `json:"description,omitempty"`
	DonationType string                `json:"donation_type"`
	Status       models.DonationStatus `json:"status"`
	DonatedAt    time.Time             `json:"donated_at"`
	ReceivedAt   *time.Time            `json:"received_at,omitempty"`
	Donor        *UserDTO              `json:"donor,omitempty"`
	Category     *CategoryDTO          `json:"category,omitempty"`
}

// ToCategoryDTO converts a ResourceCategory model to CategoryDTO
func ToCategoryDTO(category models.ResourceCategory) CategoryDTO {
	return CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

// ToCategoryDTOs converts a slice of categories
func ToCategoryDTOs(categories []models.ResourceCategory) []CategoryDTO {
	dtos := make([]CategoryDTO, len(categories))
	for i, category := range categories {
		dtos[i] = ToCategoryDTO(category)
	}
	return dtos
}

// ToDonationDTO converts a Donation model to DonationDTO
func ToDonationDTO(donation models.Donation) DonationDTO {
	dto := DonationDTO{
		ID:           donation.ID,
		ItemName:     donation.ItemName,
		Quantity:     donation.Quantity,
		Description:  donation.Description,
		DonationType: donation.DonationType,
		Status:       donation.Status,
		DonatedAt:    donation.DonatedAt,
		ReceivedAt:   donation.ReceivedAt,
	}

	// Include donor and category if preloaded
	if donation.Donor.ID != uuid.Nil {
		donor := ToUserDTO(donation.Donor)
		dto.Donor = &donor
	}
	if donation.Category.ID != uuid.Nil {
		category := ToCategoryDTO(donation.Category)
		dto.Category = &category
	}

	return dto
}

// ToDonationDTOs converts a slice of donations
func ToDonationDTOs(donations []models.Donation) []DonationDTO {
	dtos := make([]DonationDTO, len(donations))
	for i, donation := range donations {
		dtos[i] = ToDonationDTO(donation)
	}
	return dtos
}
