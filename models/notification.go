package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies how a notification is rendered by the client
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// NotificationTypeFromString converts a string to a NotificationType
func NotificationTypeFromString(typeStr string) (NotificationType, error) {
	switch typeStr {
	case "info":
		return NotificationInfo, nil
	case "success":
		return NotificationSuccess, nil
	case "warning":
		return NotificationWarning, nil
	case "error":
		return NotificationError, nil
	default:
		return "", errors.New("invalid notification type")
	}
}

// Notification is a single-recipient record. Bulk sends create one row
// per recipient, never a shared broadcast row. IsRead only ever moves
// from false to true.
type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User            `gorm:"foreignKey:UserID" json:"-"`
	Title     string           `gorm:"not null" json:"title"`
	Message   string           `gorm:"not null" json:"message"`
	Type      NotificationType `gorm:"type:varchar(20);not null;default:'info'" json:"type"`
	Link      string           `json:"link,omitempty"`
	IsRead    bool             `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time        `gorm:"not null;default:now()" json:"created_at"`
}

func (n *Notification) FromJSON(data []byte) error {
	return json.Unmarshal(data, n)
}

func (n *Notification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}
