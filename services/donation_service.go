package services

import (
	"errors"
	"log"

	"carebridge-org/carebridge/broker"
	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"

	"gorm.io/gorm"
)

type DonationServiceInterface interface {
	CreateDonation(db *database.Database, donation models.Donation) (models.Donation, error)
	GetDonationById(db *database.Database, id string) (models.Donation, error)
	GetDonations(db *database.Database, params map[string]interface{}) ([]models.Donation, error)
	UpdateStatus(db *database.Database, id string, status models.DonationStatus) (models.Donation, error)
	DeleteDonation(db *database.Database, id string) error
}

type DonationService struct {
	notificationService NotificationServiceInterface
}

func NewDonationService(notificationService NotificationServiceInterface) *DonationService {
	return &DonationService{notificationService: notificationService}
}

func (s *DonationService) CreateDonation(db *database.Database, donation models.Donation) (models.Donation, error) {
	if donation.DonorName == "" || donation.DonorEmail == "" || donation.AmountCents <= 0 {
		return models.Donation{}, ErrValidation
	}
	if donation.Status == "" {
		donation.Status = models.DonationPending
	}
	if donation.Currency == "" {
		donation.Currency = "USD"
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Donation{}, tx.Error
	}

	if err := tx.Create(&donation).Error; err != nil {
		tx.Rollback()
		return models.Donation{}, err
	}

	event, err := models.NewOutboxEvent(
		string(broker.DonationCreated),
		"donation",
		map[string]interface{}{
			"donation_id":  donation.ID.String(),
			"amount_cents": donation.AmountCents,
			"currency":     donation.Currency,
		},
	)
	if err != nil {
		tx.Rollback()
		return models.Donation{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Donation{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Donation{}, err
	}

	return donation, nil
}

func (s *DonationService) GetDonationById(db *database.Database, id string) (models.Donation, error) {
	var donation models.Donation
	if err := db.DB.First(&donation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Donation{}, ErrDonationNotFound
		}
		return models.Donation{}, err
	}
	return donation, nil
}

func (s *DonationService) GetDonations(db *database.Database, params map[string]interface{}) ([]models.Donation, error) {
	var donations []models.Donation
	query := db.DB

	if userID, ok := params["user_id"].(string); ok && userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if status, ok := params["status"].(string); ok && status != "" {
		query = query.Where("status = ?", status)
	}

	if purpose, ok := params["purpose"].(string); ok && purpose != "" {
		query = query.Where("purpose = ?", purpose)
	}

	if err := query.Order("created_at DESC").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// UpdateStatus moves a donation through its checkout lifecycle. A
// completed donation notifies the donor when an account is attached;
// the notification is fire-and-forget.
func (s *DonationService) UpdateStatus(db *database.Database, id string, status models.DonationStatus) (models.Donation, error) {
	donation, err := s.GetDonationById(db, id)
	if err != nil {
		return models.Donation{}, err
	}

	if err := db.DB.Model(&donation).Update("status", status).Error; err != nil {
		return models.Donation{}, err
	}
	donation.Status = status

	if status == models.DonationCompleted && donation.UserID != nil {
		if _, err := s.notificationService.CreateForUser(db, *donation.UserID, NotificationInput{
			Title:   "Thank You for Your Donation!",
			Message: "Your donation has been received and processed.",
			Type:    models.NotificationSuccess,
			Link:    "/donations",
		}); err != nil {
			log.Printf("Failed to create donation notification for user %s: %v", donation.UserID, err)
		}
	}

	return donation, nil
}

func (s *DonationService) DeleteDonation(db *database.Database, id string) error {
	result := db.DB.Delete(&models.Donation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDonationNotFound
	}
	return nil
}

var DonationServiceInstance DonationServiceInterface = NewDonationService(NotificationServiceInstance)
