package database

import (
	"log"

	"carebridge-org/carebridge/models"

	"gorm.io/gorm"
)

// RunMigrations runs database migrations to ensure tables are up to date
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Notification{},
		&models.Event{},
		&models.EventRegistration{},
		&models.Donation{},
		&models.Sponsorship{},
		&models.Volunteer{},
		&models.Story{},
		&models.Message{},
		&models.OutboxEvent{},
	)

	if err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	return nil
}
