package services

import (
	"errors"
	"log"
	"strings"

	"carebridge-org/carebridge/broker"
	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationInput is the payload shared by single and bulk creation
type NotificationInput struct {
	Title   string
	Message string
	Type    models.NotificationType
	Link    string
}

type NotificationServiceInterface interface {
	CreateForUser(db *database.Database, userID uuid.UUID, input NotificationInput) (models.Notification, error)
	CreateForUsers(db *database.Database, userIDs []uuid.UUID, input NotificationInput) ([]models.Notification, error)
	GetNotifications(db *database.Database, params map[string]interface{}, page, limit int) ([]models.Notification, int64, error)
	GetBellFeed(db *database.Database, userID uuid.UUID, limit int) ([]models.Notification, int64, error)
	GetNotificationById(db *database.Database, id string) (models.Notification, error)
	MarkAsRead(db *database.Database, id string) (models.Notification, error)
	MarkAllAsRead(db *database.Database, userID uuid.UUID) (int64, error)
	DeleteNotification(db *database.Database, id string) error
}

type NotificationService struct{}

// CreateForUser inserts a single unread notification for one recipient
// and stages a broker event so connected bell widgets update without
// waiting for the next poll.
func (s *NotificationService) CreateForUser(db *database.Database, userID uuid.UUID, input NotificationInput) (models.Notification, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Message) == "" {
		return models.Notification{}, ErrValidation
	}
	if input.Type == "" {
		input.Type = models.NotificationInfo
	}

	// The recipient must resolve to an existing user
	var recipientCount int64
	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).Count(&recipientCount).Error; err != nil {
		return models.Notification{}, err
	}
	if recipientCount == 0 {
		return models.Notification{}, ErrUserNotFound
	}

	notification := models.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   input.Title,
		Message: input.Message,
		Type:    input.Type,
		Link:    input.Link,
		IsRead:  false,
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Notification{}, tx.Error
	}

	if err := tx.Create(&notification).Error; err != nil {
		tx.Rollback()
		return models.Notification{}, err
	}

	event, err := models.NewOutboxEvent(
		string(broker.NotificationCreated),
		"notification",
		map[string]interface{}{
			"notification_id": notification.ID.String(),
			"user_id":         userID.String(),
			"title":           notification.Title,
			"message":         notification.Message,
			"type":            string(notification.Type),
			"link":            notification.Link,
		},
	)
	if err != nil {
		tx.Rollback()
		return models.Notification{}, err
	}

	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Notification{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Notification{}, err
	}

	return notification, nil
}

// CreateForUsers fans a notification out to several recipients as N
// independent records. Delivery is best-effort and non-atomic: a
// failed insert is logged and skipped, it never rolls back siblings.
func (s *NotificationService) CreateForUsers(db *database.Database, userIDs []uuid.UUID, input NotificationInput) ([]models.Notification, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, ErrValidation
	}
	if len(userIDs) == 0 {
		return nil, ErrValidation
	}

	created := make([]models.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		notification, err := s.CreateForUser(db, userID, input)
		if err != nil {
			log.Printf("Failed to create notification for user %s: %v", userID, err)
			continue
		}
		created = append(created, notification)
	}

	return created, nil
}

// GetNotifications returns a page of notifications, newest first,
// plus the total row count for the applied filters. Filters compose
// with AND semantics; search matches title and message
// case-insensitively. A page past the end yields an empty list.
func (s *NotificationService) GetNotifications(db *database.Database, params map[string]interface{}, page, limit int) ([]models.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := db.DB.Model(&models.Notification{})

	if userID, ok := params["user_id"].(string); ok && userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if notifType, ok := params["type"].(string); ok && notifType != "" {
		query = query.Where("type = ?", notifType)
	}

	if isRead, ok := params["is_read"].(bool); ok {
		query = query.Where("is_read = ?", isRead)
	}

	if search, ok := params["search"].(string); ok && search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(message) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// GetBellFeed returns the most recent notifications for one user and
// the user's unread count.
func (s *NotificationService) GetBellFeed(db *database.Database, userID uuid.UUID, limit int) ([]models.Notification, int64, error) {
	if limit < 1 {
		limit = 15
	}

	var notifications []models.Notification
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	var unread int64
	if err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		return nil, 0, err
	}

	return notifications, unread, nil
}

func (s *NotificationService) GetNotificationById(db *database.Database, id string) (models.Notification, error) {
	var notification models.Notification
	if err := db.DB.First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Notification{}, ErrNotificationNotFound
		}
		return models.Notification{}, err
	}
	return notification, nil
}

// MarkAsRead flips is_read to true. The transition is one-way and
// idempotent: marking an already-read notification succeeds without
// touching the row again.
func (s *NotificationService) MarkAsRead(db *database.Database, id string) (models.Notification, error) {
	var notification models.Notification
	if err := db.DB.First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Notification{}, ErrNotificationNotFound
		}
		return models.Notification{}, err
	}

	if notification.IsRead {
		return notification, nil
	}

	if err := db.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		return models.Notification{}, err
	}

	notification.IsRead = true
	return notification, nil
}

// MarkAllAsRead transitions every unread notification owned by the
// user to read in a single update. The rows are independent, so no
// ordering guarantee is needed or given.
func (s *NotificationService) MarkAllAsRead(db *database.Database, userID uuid.UUID) (int64, error) {
	result := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteNotification removes the record permanently. Deleting a
// missing id reports not-found rather than silent success.
func (s *NotificationService) DeleteNotification(db *database.Database, id string) error {
	result := db.DB.Delete(&models.Notification{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

var NotificationServiceInstance NotificationServiceInterface = &NotificationService{}
