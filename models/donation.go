package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DonationStatus tracks the checkout lifecycle of a donation
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

// DonationStatusFromString converts a string to a DonationStatus
func DonationStatusFromString(statusStr string) (DonationStatus, error) {
	switch statusStr {
	case "pending":
		return DonationPending, nil
	case "completed":
		return DonationCompleted, nil
	case "failed":
		return DonationFailed, nil
	default:
		return "", errors.New("invalid donation status")
	}
}

// Donation records a single contribution. UserID is nil for guest
// donations made without an account.
type Donation struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	DonorName  string         `gorm:"not null" json:"donor_name"`
	DonorEmail string         `gorm:"not null" json:"donor_email"`
	AmountCents int64         `gorm:"not null" json:"amount_cents"`
	Currency   string         `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Purpose    string         `json:"purpose,omitempty"`
	Status     DonationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}
