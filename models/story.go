package models

import (
	"time"

	"github.com/google/uuid"
)

// Story is a blog post or impact story shown on the public site
type Story struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Slug       string    `gorm:"unique;not null" json:"slug"`
	Body       string    `gorm:"not null" json:"body"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	CoverImage string    `json:"cover_image,omitempty"`
	Published  bool      `gorm:"not null;default:false" json:"published"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:now()" json:"updated_at"`
}
