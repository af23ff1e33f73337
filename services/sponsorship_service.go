package services

import (
	"errors"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SponsorshipServiceInterface interface {
	CreateSponsorship(db *database.Database, sponsorship models.Sponsorship) (models.Sponsorship, error)
	GetSponsorshipById(db *database.Database, id string) (models.Sponsorship, error)
	GetSponsorships(db *database.Database, params map[string]interface{}) ([]models.Sponsorship, error)
	UpdateSponsorship(db *database.Database, id string, updatedData models.Sponsorship) (models.Sponsorship, error)
	DeleteSponsorship(db *database.Database, id string) error
}

type SponsorshipService struct{}

func (s *SponsorshipService) CreateSponsorship(db *database.Database, sponsorship models.Sponsorship) (models.Sponsorship, error) {
	if sponsorship.UserID == uuid.Nil || sponsorship.Program == "" || sponsorship.AmountCents <= 0 {
		return models.Sponsorship{}, ErrValidation
	}
	if sponsorship.Status == "" {
		sponsorship.Status = models.SponsorshipActive
	}
	if sponsorship.Frequency == "" {
		sponsorship.Frequency = models.FrequencyMonthly
	}

	if err := db.DB.Create(&sponsorship).Error; err != nil {
		return models.Sponsorship{}, err
	}
	return sponsorship, nil
}

func (s *SponsorshipService) GetSponsorshipById(db *database.Database, id string) (models.Sponsorship, error) {
	var sponsorship models.Sponsorship
	if err := db.DB.First(&sponsorship, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Sponsorship{}, ErrSponsorshipNotFound
		}
		return models.Sponsorship{}, err
	}
	return sponsorship, nil
}

func (s *SponsorshipService) GetSponsorships(db *database.Database, params map[string]interface{}) ([]models.Sponsorship, error) {
	var sponsorships []models.Sponsorship
	query := db.DB

	if userID, ok := params["user_id"].(string); ok && userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if status, ok := params["status"].(string); ok && status != "" {
		query = query.Where("status = ?", status)
	}

	if program, ok := params["program"].(string); ok && program != "" {
		query = query.Where("program = ?", program)
	}

	if err := query.Order("created_at DESC").Find(&sponsorships).Error; err != nil {
		return nil, err
	}
	return sponsorships, nil
}

func (s *SponsorshipService) UpdateSponsorship(db *database.Database, id string, updatedData models.Sponsorship) (models.Sponsorship, error) {
	sponsorship, err := s.GetSponsorshipById(db, id)
	if err != nil {
		return models.Sponsorship{}, err
	}

	if err := db.DB.Model(&sponsorship).Updates(updatedData).Error; err != nil {
		return models.Sponsorship{}, err
	}
	return sponsorship, nil
}

func (s *SponsorshipService) DeleteSponsorship(db *database.Database, id string) error {
	result := db.DB.Delete(&models.Sponsorship{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSponsorshipNotFound
	}
	return nil
}

var SponsorshipServiceInstance SponsorshipServiceInterface = &SponsorshipService{}
