package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleType represents the membership role of a user
type RoleType string

const (
	RoleAdmin       RoleType = "admin"
	RoleVolunteer   RoleType = "volunteer"
	RoleDonor       RoleType = "donor"
	RoleSponsor     RoleType = "sponsor"
	RoleBeneficiary RoleType = "beneficiary"
)

// RoleTypeFromString converts a string to a RoleType
func RoleTypeFromString(roleStr string) (RoleType, error) {
	switch roleStr {
	case "admin":
		return RoleAdmin, nil
	case "volunteer":
		return RoleVolunteer, nil
	case "donor":
		return RoleDonor, nil
	case "sponsor":
		return RoleSponsor, nil
	case "beneficiary":
		return RoleBeneficiary, nil
	default:
		return "", errors.New("invalid role type")
	}
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `json:"-"`
	Role         RoleType  `gorm:"type:varchar(50);not null;default:'donor'" json:"role"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
