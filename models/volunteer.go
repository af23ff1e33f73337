package models

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerStatus is the review state of a volunteer application
type VolunteerStatus string

const (
	VolunteerPending  VolunteerStatus = "pending"
	VolunteerApproved VolunteerStatus = "approved"
	VolunteerRejected VolunteerStatus = "rejected"
)

// Volunteer is a volunteer application submitted by a user
type Volunteer struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Phone        string          `json:"phone"`
	Skills       string          `json:"skills"`
	Availability string          `json:"availability"`
	Motivation   string          `json:"motivation"`
	Status       VolunteerStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}
