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
	ErrDonationNotFound = errors.New("donation not found")
	ErrCategoryNotFound = errors.New("resource category not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

// DonationService handles donation intake and queries.
type DonationService struct {
	donationRepo repository.DonationRepository
	categoryRepo repository.CategoryRepository
}

// NewDonationService creates a new DonationService.
func NewDonationService(donationRepo repository.DonationRepository, categoryRepo repository.CategoryRepository) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
		categoryRepo: categoryRepo,
	}
}

// DonateInput represents input for recording a donation.
type DonateInput struct {
	CategoryID   uuid.UUID
	ItemName     string
	Quantity     int
	Description  string
	DonationType string
}

// Donate records a new donation by the given donor. Status starts at Pending
// and donated-at is stamped now.
func (s *DonationService) Donate(input DonateInput, donorID uuid.UUID) (*models.Donation, error) {
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.categoryRepo.FindByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	donation := &models.Donation{
		DonorID:      donorID,
		CategoryID:   input.CategoryID,
		ItemName:     input.ItemName,
		Quantity:     input.Quantity,
		Description:  input.Description,
		DonationType: input.DonationType,
		Status:       models.DonationStatusPending,
		DonatedAt:    time.Now(),
	}

	if err := s.donationRepo.Create(donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	return donation, nil
}

// ListMine returns one donor's donations newest first with the category joined.
func (s *DonationService) ListMine(donorID uuid.UUID) ([]models.Donation, error) {
	donations, err := s.donationRepo.ListByDonor(donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

// ListAll returns every donation newest first with donor and category joined.
func (s *DonationService) ListAll(params utils.PaginationParams) ([]models.Donation, int64, error) {
	donations, total, err := s.donationRepo.ListAll(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, total, nil
}

// ListCategories returns the resource categories donations are filed under.
func (s *DonationService) ListCategories() ([]models.ResourceCategory, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// MarkReceived moves a donation to Received and stamps received-at. There is
// no HTTP route for this transition; intake staff tooling calls it directly.
func (s *DonationService) MarkReceived(id uuid.UUID) (*models.Donation, error) {
	donation, err := s.donationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, fmt.Errorf("failed to find donation: %w", err)
	}

	now := time.Now()
	donation.Status = models.DonationStatusReceived
	donation.ReceivedAt = &now

	if err := s.donationRepo.Update(donation); err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}

	return donation, nil
}
