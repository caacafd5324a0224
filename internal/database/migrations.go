package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/masindi/relief-coordination-api/internal/models"
)

// AddIndexes creates the indexes the list and dashboard queries lean on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model interface{}
		name  string
	}{
		{&models.DisasterIncident{}, "idx_disaster_incidents_reported_at"},
		{&models.DisasterIncident{}, "idx_disaster_incidents_reporter_id"},
		{&models.Donation{}, "idx_donations_donated_at"},
		{&models.Donation{}, "idx_donations_donor_id"},
		{&models.Donation{}, "idx_donations_category_id"},
		{&models.VolunteerTask{}, "idx_volunteer_tasks_status"},
		{&models.VolunteerTask{}, "idx_volunteer_tasks_start_date"},
		{&models.VolunteerTask{}, "idx_volunteer_tasks_incident_id"},
		{&models.VolunteerAssignment{}, "idx_volunteer_assignments_assignment_date"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}
		if err := migrator.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
