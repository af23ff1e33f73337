package services

import (
	"errors"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"

	"gorm.io/gorm"
)

type MessageServiceInterface interface {
	CreateMessage(db *database.Database, message models.Message) (models.Message, error)
	GetMessageById(db *database.Database, id string) (models.Message, error)
	GetMessages(db *database.Database, params map[string]interface{}) ([]models.Message, error)
	MarkResponded(db *database.Database, id string) (models.Message, error)
	DeleteMessage(db *database.Database, id string) error
}

type MessageService struct{}

func (s *MessageService) CreateMessage(db *database.Database, message models.Message) (models.Message, error) {
	if message.Name == "" || message.Email == "" || message.Body == "" {
		return models.Message{}, ErrValidation
	}

	if err := db.DB.Create(&message).Error; err != nil {
		return models.Message{}, err
	}
	return message, nil
}

func (s *MessageService) GetMessageById(db *database.Database, id string) (models.Message, error) {
	var message models.Message
	if err := db.DB.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Message{}, ErrMessageNotFound
		}
		return models.Message{}, err
	}
	return message, nil
}

func (s *MessageService) GetMessages(db *database.Database, params map[string]interface{}) ([]models.Message, error) {
	var messages []models.Message
	query := db.DB

	if responded, ok := params["responded"].(bool); ok {
		query = query.Where("responded = ?", responded)
	}

	if email, ok := params["email"].(string); ok && email != "" {
		query = query.Where("email = ?", email)
	}

	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *MessageService) MarkResponded(db *database.Database, id string) (models.Message, error) {
	message, err := s.GetMessageById(db, id)
	if err != nil {
		return models.Message{}, err
	}

	if message.Responded {
		return message, nil
	}

	if err := db.DB.Model(&message).Update("responded", true).Error; err != nil {
		return models.Message{}, err
	}
	message.Responded = true
	return message, nil
}

func (s *MessageService) DeleteMessage(db *database.Database, id string) error {
	result := db.DB.Delete(&models.Message{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

var MessageServiceInstance MessageServiceInterface = &MessageService{}
