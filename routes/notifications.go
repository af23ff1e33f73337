package routes

import (
	"errors"
	"net/http"
	"strconv"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"
	"carebridge-org/carebridge/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createNotificationRequest struct {
	UserID  string   `json:"user_id"`
	UserIDs []string `json:"user_ids"`
	Title   string   `json:"title" binding:"required"`
	Message string   `json:"message" binding:"required"`
	Type    string   `json:"type"`
	Link    string   `json:"link"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func RegisterNotificationRoutes(protected, admin *gin.RouterGroup, db *database.Database, notificationService services.NotificationServiceInterface) {
	group := protected.Group("/notifications")
	{
		group.GET("/bell", func(c *gin.Context) { GetBellFeed(c, db, notificationService) })
		group.POST("/:id/read", func(c *gin.Context) { MarkNotificationRead(c, db, notificationService) })
		group.POST("/read-all", func(c *gin.Context) { MarkAllNotificationsRead(c, db, notificationService) })
	}

	adminGroup := admin.Group("/notifications")
	{
		adminGroup.GET("/", func(c *gin.Context) { GetNotifications(c, db, notificationService) })
		adminGroup.POST("/", func(c *gin.Context) { CreateNotification(c, db, notificationService) })
		adminGroup.DELETE("/:id", func(c *gin.Context) { DeleteNotification(c, db, notificationService) })
	}
}

// GetNotifications serves the admin list: composable filters, newest
// first, with a pagination envelope.
func GetNotifications(c *gin.Context, db *database.Database, notificationService services.NotificationServiceInterface) {
	params := make(map[string]interface{})

	if userID := c.Query("user_id"); userID != "" {
		params["user_id"] = userID
	}
	if notifType := c.Query("type"); notifType != "" {
		if _, err := models.NotificationTypeFromString(notifType); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification type"})
			return
		}
		params["type"] = notifType
	}
	if isRead := c.Query("is_read"); isRead != "" {
		parsed, err := strconv.ParseBool(isRead)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_read must be true or false"})
			return
		}
		params["is_read"] = parsed
	}
	if search := c.Query("search"); search != "" {
		params["search"] = search
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	notifications, total, err := notificationService.GetNotifications(db, params, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"pagination": paginationResponse{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}

// CreateNotification creates a single notification or fans one out to
// several recipients when user_ids is supplied.
func CreateNotification(c *gin.Context, db *database.Database, notificationService services.NotificationServiceInterface) {
	var request createNotificationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notifType := models.NotificationInfo
	if request.Type != "" {
		parsed, err := models.NotificationTypeFromString(request.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification type"})
			return
		}
		notifType = parsed
	}

	input := services.NotificationInput{
		Title:   request.Title,
		Message: request.Message,
		Type:    notifType,
		Link:    request.Link,
	}

	if len(request.UserIDs) > 0 {
		userIDs := make([]uuid.UUID, 0, len(request.UserIDs))
		for _, idStr := range request.UserIDs {
			id, err := uuid.Parse(idStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID: " + idStr})
				return
			}
			userIDs = append(userIDs, id)
		}

		created, err := notificationService.CreateForUsers(db, userIDs, input)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"notifications": created, "created": len(created)})
		return
	}

	userID, err := uuid.Parse(request.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	notification, err := notificationService.CreateForUser(db, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, notification)
}

func DeleteNotification(c *gin.Context, db *database.Database, notificationService services.NotificationServiceInterface) {
	id := c.Param("id")
	if err := notificationService.DeleteNotification(db, id); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// GetBellFeed serves the authenticated user's bell widget: recent
// notifications plus the unread count.
func GetBellFeed(c *gin.Context, db *database.Database, notificationService services.NotificationServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	notifications, unread, err := notificationService.GetBellFeed(db, userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func MarkNotificationRead(c *gin.Context, db *database.Database, notificationService services.NotificationServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	existing, err := notificationService.GetNotificationById(db, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Only the recipient (or an admin) may mark a notification
	roleValue, _ := c.Get("role")
	roleStr, _ := roleValue.(string)
	if existing.UserID != userID && roleStr != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own notifications"})
		return
	}

	notification, err := notificationService.MarkAsRead(db, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notification)
}

func MarkAllNotificationsRead(c *gin.Context, db *database.Database, notificationService services.NotificationServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	updated, err := notificationService.MarkAllAsRead(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// currentUserID reads the authenticated user id set by AuthMiddleware
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := userIDValue.(uuid.UUID)
	return userID, ok
}
