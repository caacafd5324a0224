package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleVolunteer UserRole = "Volunteer"
	RoleDonor     UserRole = "Donor"
	RoleAdmin     UserRole = "Admin"
)

// Valid reports whether the role belongs to the closed set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleVolunteer, RoleDonor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string     `gorm:"type:varchar(100);not null" json:"last_name"`
	PhoneNumber  string     `gorm:"type:varchar(30)" json:"phone_number"`
	Address      string     `gorm:"type:text" json:"address"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'Volunteer'" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at"`

	// Relations
	Incidents   []DisasterIncident    `gorm:"foreignKey:ReporterID" json:"-"`
	Donations   []Donation            `gorm:"foreignKey:DonorID" json:"-"`
	Assignments []VolunteerAssignment `gorm:"foreignKey:VolunteerID" json:"-"`
}

// DisplayName is the name bound into the session at login.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
