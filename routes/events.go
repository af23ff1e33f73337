package routes

import (
	"errors"
	"net/http"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"
	"carebridge-org/carebridge/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RegisterEventRoutes(public, protected, admin *gin.RouterGroup, db *database.Database, eventService services.EventServiceInterface) {
	group := public.Group("/events")
	{
		group.GET("/", func(c *gin.Context) { GetPublishedEvents(c, db, eventService) })
		group.GET("/:id", func(c *gin.Context) { GetEventById(c, db, eventService) })
	}

	protectedGroup := protected.Group("/events")
	{
		protectedGroup.POST("/:id/register", func(c *gin.Context) { RegisterForEvent(c, db, eventService) })
		protectedGroup.DELETE("/:id/register", func(c *gin.Context) { UnregisterFromEvent(c, db, eventService) })
	}

	adminGroup := admin.Group("/events")
	{
		adminGroup.GET("/", func(c *gin.Context) { GetEvents(c, db, eventService) })
		adminGroup.POST("/", func(c *gin.Context) { CreateEvent(c, db, eventService) })
		adminGroup.PUT("/:id", func(c *gin.Context) { UpdateEvent(c, db, eventService) })
		adminGroup.DELETE("/:id", func(c *gin.Context) { DeleteEvent(c, db, eventService) })
		adminGroup.GET("/:id/registrations", func(c *gin.Context) { GetEventRegistrations(c, db, eventService) })
		adminGroup.DELETE("/:id/registrations/:userId", func(c *gin.Context) { AdminUnregisterUser(c, db, eventService) })
	}
}

// GetPublishedEvents lists upcoming events for the public site
func GetPublishedEvents(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	params := map[string]interface{}{"published": true}

	if location := c.Query("location"); location != "" {
		params["location"] = location
	}

	events, err := eventService.GetEvents(db, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func GetEventById(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	event, err := eventService.GetEventById(db, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

func GetEvents(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	params := make(map[string]interface{})

	if location := c.Query("location"); location != "" {
		params["location"] = location
	}

	events, err := eventService.GetEvents(db, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func CreateEvent(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdEvent, err := eventService.CreateEvent(db, event)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, createdEvent)
}

func UpdateEvent(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedEvent, err := eventService.UpdateEvent(db, c.Param("id"), event)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updatedEvent)
}

func DeleteEvent(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	if err := eventService.DeleteEvent(db, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}

// RegisterForEvent signs the authenticated user up for an event
func RegisterForEvent(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	registration, err := eventService.RegisterUser(db, c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, services.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "You are already registered for this event"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, registration)
}

func UnregisterFromEvent(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	if err := eventService.UnregisterUser(db, c.Param("id"), userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unregistered": true})
}

func GetEventRegistrations(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	registrations, err := eventService.GetRegistrations(db, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, registrations)
}

// AdminUnregisterUser removes another user's registration from the
// admin back-office.
func AdminUnregisterUser(c *gin.Context, db *database.Database, eventService services.EventServiceInterface) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := eventService.UnregisterUser(db, c.Param("id"), userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unregistered": true})
}
