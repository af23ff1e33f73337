package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact-form submission from the public site
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `gorm:"not null" json:"body"`
	Responded bool      `gorm:"not null;default:false" json:"responded"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}
