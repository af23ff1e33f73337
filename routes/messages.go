package routes

import (
	"errors"
	"net/http"
	"strconv"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"
	"carebridge-org/carebridge/services"

	"github.com/gin-gonic/gin"
)

func RegisterMessageRoutes(public, admin *gin.RouterGroup, db *database.Database, messageService services.MessageServiceInterface) {
	public.POST("/messages", func(c *gin.Context) { CreateMessage(c, db, messageService) })

	adminGroup := admin.Group("/messages")
	{
		adminGroup.GET("/", func(c *gin.Context) { GetMessages(c, db, messageService) })
		adminGroup.GET("/:id", func(c *gin.Context) { GetMessageById(c, db, messageService) })
		adminGroup.PUT("/:id/responded", func(c *gin.Context) { MarkMessageResponded(c, db, messageService) })
		adminGroup.DELETE("/:id", func(c *gin.Context) { DeleteMessage(c, db, messageService) })
	}
}

func CreateMessage(c *gin.Context, db *database.Database, messageService services.MessageServiceInterface) {
	var message models.Message
	if err := c.ShouldBindJSON(&message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := messageService.CreateMessage(db, message)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func GetMessages(c *gin.Context, db *database.Database, messageService services.MessageServiceInterface) {
	params := make(map[string]interface{})

	if responded := c.Query("responded"); responded != "" {
		parsed, err := strconv.ParseBool(responded)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "responded must be true or false"})
			return
		}
		params["responded"] = parsed
	}
	if email := c.Query("email"); email != "" {
		params["email"] = email
	}

	messages, err := messageService.GetMessages(db, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func GetMessageById(c *gin.Context, db *database.Database, messageService services.MessageServiceInterface) {
	message, err := messageService.GetMessageById(db, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, message)
}

func MarkMessageResponded(c *gin.Context, db *database.Database, messageService services.MessageServiceInterface) {
	message, err := messageService.MarkResponded(db, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, message)
}

func DeleteMessage(c *gin.Context, db *database.Database, messageService services.MessageServiceInterface) {
	if err := messageService.DeleteMessage(db, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}
