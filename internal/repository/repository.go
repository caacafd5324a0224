package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/masindi/relief-coordination-api/internal/models"
	"github.com/masindi/relief-coordination-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by exact email match
	FindByEmail(email string) (*models.User, error)

	// UpdateLastLogin stamps the user's last login time
	UpdateLastLogin(id uuid.UUID, at time.Time) error

	// CountActiveVolunteers counts users with the Volunteer role that are active
	CountActiveVolunteers() (int64, error)
}

// IncidentRepository defines the interface for disaster incident data access
type IncidentRepository interface {
	// Create creates a new incident
	Create(incident *models.DisasterIncident) error

	// FindByID finds an incident by ID with the reporter joined
	FindByID(id uuid.UUID) (*models.DisasterIncident, error)

	// List retrieves incidents newest first with the reporter joined
	List(params utils.PaginationParams) ([]models.DisasterIncident, int64, error)

	// ListRecent retrieves the most recently reported incidents
	ListRecent(limit int) ([]models.DisasterIncident, error)

	// Count counts all incidents
	Count() (int64, error)
}

// CategoryRepository defines the interface for resource category lookup data
type CategoryRepository interface {
	// List retrieves all categories ordered by name
	List() ([]models.ResourceCategory, error)

	// FindByID finds a category by ID
	FindByID(id uuid.UUID) (*models.ResourceCategory, error)
}

// DonationRepository defines the interface for donation data access
type DonationRepository interface {
	// Create creates a new donation
	Create(donation *models.Donation) error

	// FindByID finds a donation by ID with donor and category joined
	FindByID(id uuid.UUID) (*models.Donation, error)

	// ListByDonor retrieves one donor's donations newest first with the category joined
	ListByDonor(donorID uuid.UUID) ([]models.Donation, error)

	// ListAll retrieves all donations newest first with donor and category joined
	ListAll(params utils.PaginationParams) ([]models.Donation, int64, error)

	// SumQuantityByDonor totals the donated quantity for one donor
	SumQuantityByDonor(donorID uuid.UUID) (int64, error)

	// Count counts all donations
	Count() (int64, error)

	// Update persists field mutations on a donation
	Update(donation *models.Donation) error
}

// TaskRepository defines the interface for volunteer task and assignment data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.VolunteerTask) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uuid.UUID, preload ...string) (*models.VolunteerTask, error)

	// ListOpen retrieves Open tasks starting strictly after the given time,
	// soonest first, with the incident joined
	ListOpen(after time.Time) ([]models.VolunteerTask, error)

	// CountOpen counts tasks in the Open status
	CountOpen() (int64, error)

	// Join atomically assigns a volunteer to a task, incrementing the
	// volunteer count and flipping the task to InProgress when it fills.
	// Returns ErrAlreadyAssigned, ErrTaskFull, or gorm.ErrRecordNotFound.
	Join(taskID, volunteerID uuid.UUID, at time.Time) (*models.VolunteerAssignment, error)

	// FindAssignmentByID finds an assignment by ID with the task joined
	FindAssignmentByID(id uuid.UUID) (*models.VolunteerAssignment, error)

	// ListAssignmentsByVolunteer retrieves one volunteer's assignments newest
	// first with the task and its incident joined
	ListAssignmentsByVolunteer(volunteerID uuid.UUID) ([]models.VolunteerAssignment, error)

	// UpdateAssignment persists field mutations on an assignment
	UpdateAssignment(assignment *models.VolunteerAssignment) error
}
