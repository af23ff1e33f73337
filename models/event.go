package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is an NGO event that users can register for
type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `gorm:"not null" json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Capacity    int       `gorm:"default:0" json:"capacity"`
	CoverImage  string    `json:"cover_image,omitempty"`
	Published   bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

// EventRegistration links a user to an event they signed up for
type EventRegistration struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_user" json:"event_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_user" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}
