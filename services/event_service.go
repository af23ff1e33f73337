package services

import (
	"errors"
	"log"

	"carebridge-org/carebridge/broker"
	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventServiceInterface interface {
	CreateEvent(db *database.Database, event models.Event) (models.Event, error)
	GetEventById(db *database.Database, id string) (models.Event, error)
	GetEvents(db *database.Database, params map[string]interface{}) ([]models.Event, error)
	UpdateEvent(db *database.Database, id string, updatedData models.Event) (models.Event, error)
	DeleteEvent(db *database.Database, id string) error
	RegisterUser(db *database.Database, eventID string, userID uuid.UUID) (models.EventRegistration, error)
	UnregisterUser(db *database.Database, eventID string, userID uuid.UUID) error
	GetRegistrations(db *database.Database, eventID string) ([]models.EventRegistration, error)
}

type EventService struct {
	notificationService NotificationServiceInterface
}

func NewEventService(notificationService NotificationServiceInterface) *EventService {
	return &EventService{notificationService: notificationService}
}

func (s *EventService) CreateEvent(db *database.Database, event models.Event) (models.Event, error) {
	if event.Title == "" || event.StartsAt.IsZero() {
		return models.Event{}, ErrValidation
	}

	if err := db.DB.Create(&event).Error; err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *EventService) GetEventById(db *database.Database, id string) (models.Event, error) {
	var event models.Event
	if err := db.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrEventNotFound
		}
		return models.Event{}, err
	}
	return event, nil
}

func (s *EventService) GetEvents(db *database.Database, params map[string]interface{}) ([]models.Event, error) {
	var events []models.Event
	query := db.DB

	if published, ok := params["published"].(bool); ok {
		query = query.Where("published = ?", published)
	}

	if location, ok := params["location"].(string); ok && location != "" {
		query = query.Where("location = ?", location)
	}

	if err := query.Order("starts_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) UpdateEvent(db *database.Database, id string, updatedData models.Event) (models.Event, error) {
	var event models.Event
	if err := db.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrEventNotFound
		}
		return models.Event{}, err
	}

	if err := db.DB.Model(&event).Updates(updatedData).Error; err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(db *database.Database, id string) error {
	result := db.DB.Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// RegisterUser signs a user up for an event. On success a confirmation
// notification is created as a fire-and-forget side effect: a
// notification failure is logged and never fails the registration.
func (s *EventService) RegisterUser(db *database.Database, eventID string, userID uuid.UUID) (models.EventRegistration, error) {
	event, err := s.GetEventById(db, eventID)
	if err != nil {
		return models.EventRegistration{}, err
	}

	var existing int64
	if err := db.DB.Model(&models.EventRegistration{}).
		Where("event_id = ? AND user_id = ?", event.ID, userID).
		Count(&existing).Error; err != nil {
		return models.EventRegistration{}, err
	}
	if existing > 0 {
		return models.EventRegistration{}, ErrAlreadyRegistered
	}

	registration := models.EventRegistration{
		ID:      uuid.New(),
		EventID: event.ID,
		UserID:  userID,
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.EventRegistration{}, tx.Error
	}

	if err := tx.Create(&registration).Error; err != nil {
		tx.Rollback()
		return models.EventRegistration{}, err
	}

	outbox, err := models.NewOutboxEvent(
		string(broker.EventRegistered),
		"event",
		map[string]interface{}{
			"event_id": event.ID.String(),
			"user_id":  userID.String(),
		},
	)
	if err != nil {
		tx.Rollback()
		return models.EventRegistration{}, err
	}

	if err := tx.Create(outbox).Error; err != nil {
		tx.Rollback()
		return models.EventRegistration{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.EventRegistration{}, err
	}

	if _, err := s.notificationService.CreateForUser(db, userID, NotificationInput{
		Title:   "Event Registration Confirmed!",
		Message: "You are registered for " + event.Title + ".",
		Type:    models.NotificationSuccess,
		Link:    "/events",
	}); err != nil {
		log.Printf("Failed to create registration notification for user %s: %v", userID, err)
	}

	return registration, nil
}

// UnregisterUser removes a registration. Used both by the user and by
// the admin back-office; the row is hard-deleted with no audit trail.
func (s *EventService) UnregisterUser(db *database.Database, eventID string, userID uuid.UUID) error {
	result := db.DB.Delete(&models.EventRegistration{}, "event_id = ? AND user_id = ?", eventID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *EventService) GetRegistrations(db *database.Database, eventID string) ([]models.EventRegistration, error) {
	var registrations []models.EventRegistration
	if err := db.DB.Where("event_id = ?", eventID).Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

var EventServiceInstance EventServiceInterface = NewEventService(NotificationServiceInstance)
