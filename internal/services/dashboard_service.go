package services

import (
	"fmt"

	"github.com/masindi/relief-coordination-api/internal/constants"
	"github.com/masindi/relief-coordination-api/internal/models"
	"github.com/masindi/relief-coordination-api/internal/repository"
)

// DashboardService produces the home page aggregates.
type DashboardService struct {
	userRepo     repository.UserRepository
	incidentRepo repository.IncidentRepository
	donationRepo repository.DonationRepository
	taskRepo     repository.TaskRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	userRepo repository.UserRepository,
	incidentRepo repository.IncidentRepository,
	donationRepo repository.DonationRepository,
	taskRepo repository.TaskRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:     userRepo,
		incidentRepo: incidentRepo,
		donationRepo: donationRepo,
		taskRepo:     taskRepo,
	}
}

// DashboardSummary holds the read-only aggregates the home page shows.
type DashboardSummary struct {
	TotalIncidents   int64                     `json:"total_incidents"`
	ActiveVolunteers int64                     `json:"active_volunteers"`
	TotalDonations   int64                     `json:"total_donations"`
	OpenTasks        int64                     `json:"open_tasks"`
	RecentIncidents  []models.DisasterIncident `json:"recent_incidents"`
}

// Summary computes the dashboard aggregates. Purely derived; no mutation.
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	totalIncidents, err := s.incidentRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents: %w", err)
	}

	activeVolunteers, err := s.userRepo.CountActiveVolunteers()
	if err != nil {
		return nil, fmt.Errorf("failed to count active volunteers: %w", err)
	}

	totalDonations, err := s.donationRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count donations: %w", err)
	}

	openTasks, err := s.taskRepo.CountOpen()
	if err != nil {
		return nil, fmt.Errorf("failed to count open tasks: %w", err)
	}

	recent, err := s.incidentRepo.ListRecent(constants.DashboardRecentIncidents)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent incidents: %w", err)
	}

	return &DashboardSummary{
		TotalIncidents:   totalIncidents,
		ActiveVolunteers: activeVolunteers,
		TotalDonations:   totalDonations,
		OpenTasks:        openTasks,
		RecentIncidents:  recent,
	}, nil
}
