package services

import (
	"errors"

	"carebridge-org/carebridge/broker"
	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"

	"gorm.io/gorm"
)

type UserServiceInterface interface {
	CreateUser(db *database.Database, user models.User) (models.User, error)
	GetUserById(db *database.Database, id string) (models.User, error)
	GetUserByEmail(db *database.Database, email string) (models.User, error)
	UpdateUser(db *database.Database, id string, updatedData models.User) (models.User, error)
	DeleteUser(db *database.Database, id string) error
	GetUsers(db *database.Database, params map[string]interface{}) ([]models.User, error)
}

type UserService struct {
	authService AuthServiceInterface
}

func NewUserService(authService AuthServiceInterface) *UserService {
	return &UserService{authService: authService}
}

func (s *UserService) CreateUser(db *database.Database, user models.User) (models.User, error) {
	if user.Name == "" || user.Email == "" {
		return models.User{}, ErrValidation
	}
	if user.Role == "" {
		user.Role = models.RoleDonor
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.User{}, tx.Error
	}

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	event, err := models.NewOutboxEvent(
		string(broker.UserCreated),
		"user",
		map[string]interface{}{
			"user_id": user.ID.String(),
			"email":   user.Email,
			"role":    string(user.Role),
		},
	)
	if err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	return user, nil
}

func (s *UserService) GetUserById(db *database.Database, id string) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(db *database.Database, email string) (models.User, error) {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(db *database.Database, id string, updatedData models.User) (models.User, error) {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.User{}, tx.Error
	}

	var user models.User
	if err := tx.First(&user, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	if err := tx.Model(&user).Updates(updatedData).Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	event, err := models.NewOutboxEvent(
		string(broker.UserUpdated),
		"user",
		map[string]interface{}{
			"user_id": user.ID.String(),
			"email":   user.Email,
		},
	)
	if err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	return user, nil
}

func (s *UserService) DeleteUser(db *database.Database, id string) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var user models.User
	if err := tx.First(&user, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		return err
	}

	event, err := models.NewOutboxEvent(
		string(broker.UserDeleted),
		"user",
		map[string]interface{}{
			"user_id": user.ID.String(),
		},
	)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (s *UserService) GetUsers(db *database.Database, params map[string]interface{}) ([]models.User, error) {
	var users []models.User
	query := db.DB

	if email, ok := params["email"].(string); ok && email != "" {
		query = query.Where("email = ?", email)
	}

	if role, ok := params["role"].(string); ok && role != "" {
		query = query.Where("role = ?", role)
	}

	result := query.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

var UserServiceInstance UserServiceInterface = &UserService{}
