package models

import (
	"time"

	"github.com/google/uuid"
)

// SponsorshipFrequency is the billing cadence of a sponsorship
type SponsorshipFrequency string

const (
	FrequencyOneTime SponsorshipFrequency = "one_time"
	FrequencyMonthly SponsorshipFrequency = "monthly"
	FrequencyYearly  SponsorshipFrequency = "yearly"
)

// SponsorshipStatus is the current state of a sponsorship
type SponsorshipStatus string

const (
	SponsorshipActive SponsorshipStatus = "active"
	SponsorshipPaused SponsorshipStatus = "paused"
	SponsorshipEnded  SponsorshipStatus = "ended"
)

type Sponsorship struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	Program     string               `gorm:"not null" json:"program"`
	AmountCents int64                `gorm:"not null" json:"amount_cents"`
	Currency    string               `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Frequency   SponsorshipFrequency `gorm:"type:varchar(20);not null;default:'monthly'" json:"frequency"`
	Status      SponsorshipStatus    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time            `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"not null;default:now()" json:"updated_at"`
}
