package services

import (
	"errors"
	"log"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VolunteerServiceInterface interface {
	Apply(db *database.Database, application models.Volunteer) (models.Volunteer, error)
	GetApplicationById(db *database.Database, id string) (models.Volunteer, error)
	GetApplications(db *database.Database, params map[string]interface{}) ([]models.Volunteer, error)
	Decide(db *database.Database, id string, status models.VolunteerStatus) (models.Volunteer, error)
	DeleteApplication(db *database.Database, id string) error
}

type VolunteerService struct {
	notificationService NotificationServiceInterface
}

func NewVolunteerService(notificationService NotificationServiceInterface) *VolunteerService {
	return &VolunteerService{notificationService: notificationService}
}

func (s *VolunteerService) Apply(db *database.Database, application models.Volunteer) (models.Volunteer, error) {
	if application.UserID == uuid.Nil || application.Motivation == "" {
		return models.Volunteer{}, ErrValidation
	}

	// One open application per user
	var pending int64
	if err := db.DB.Model(&models.Volunteer{}).
		Where("user_id = ? AND status = ?", application.UserID, models.VolunteerPending).
		Count(&pending).Error; err != nil {
		return models.Volunteer{}, err
	}
	if pending > 0 {
		return models.Volunteer{}, ErrResourceExists
	}

	application.Status = models.VolunteerPending
	if err := db.DB.Create(&application).Error; err != nil {
		return models.Volunteer{}, err
	}
	return application, nil
}

func (s *VolunteerService) GetApplicationById(db *database.Database, id string) (models.Volunteer, error) {
	var application models.Volunteer
	if err := db.DB.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Volunteer{}, ErrVolunteerNotFound
		}
		return models.Volunteer{}, err
	}
	return application, nil
}

func (s *VolunteerService) GetApplications(db *database.Database, params map[string]interface{}) ([]models.Volunteer, error) {
	var applications []models.Volunteer
	query := db.DB

	if userID, ok := params["user_id"].(string); ok && userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if status, ok := params["status"].(string); ok && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// Decide approves or rejects an application and notifies the
// applicant. The notification is fire-and-forget: a failure is logged
// and the decision stands.
func (s *VolunteerService) Decide(db *database.Database, id string, status models.VolunteerStatus) (models.Volunteer, error) {
	if status != models.VolunteerApproved && status != models.VolunteerRejected {
		return models.Volunteer{}, ErrValidation
	}

	application, err := s.GetApplicationById(db, id)
	if err != nil {
		return models.Volunteer{}, err
	}

	if err := db.DB.Model(&application).Update("status", status).Error; err != nil {
		return models.Volunteer{}, err
	}
	application.Status = status

	input := NotificationInput{
		Title:   "Volunteer Application Update",
		Message: "Your volunteer application has been " + string(status) + ".",
		Type:    models.NotificationInfo,
		Link:    "/profile/volunteer",
	}
	if status == models.VolunteerApproved {
		input.Type = models.NotificationSuccess
	}

	if _, err := s.notificationService.CreateForUser(db, application.UserID, input); err != nil {
		log.Printf("Failed to create volunteer decision notification for user %s: %v", application.UserID, err)
	}

	return application, nil
}

func (s *VolunteerService) DeleteApplication(db *database.Database, id string) error {
	result := db.DB.Delete(&models.Volunteer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVolunteerNotFound
	}
	return nil
}

var VolunteerServiceInstance VolunteerServiceInterface = NewVolunteerService(NotificationServiceInstance)
