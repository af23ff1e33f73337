package routes

import (
	"errors"
	"net/http"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"
	"carebridge-org/carebridge/services"

	"github.com/gin-gonic/gin"
)

type volunteerDecisionRequest struct {
	Status string `json:"status" binding:"required"`
}

func RegisterVolunteerRoutes(protected, admin *gin.RouterGroup, db *database.Database, volunteerService services.VolunteerServiceInterface) {
	group := protected.Group("/volunteers")
	{
		group.POST("/", func(c *gin.Context) { ApplyAsVolunteer(c, db, volunteerService) })
		group.GET("/mine", func(c *gin.Context) { GetMyApplications(c, db, volunteerService) })
	}

	adminGroup := admin.Group("/volunteers")
	{
		adminGroup.GET("/", func(c *gin.Context) { GetVolunteerApplications(c, db, volunteerService) })
		adminGroup.PUT("/:id/decision", func(c *gin.Context) { DecideVolunteerApplication(c, db, volunteerService) })
		adminGroup.DELETE("/:id", func(c *gin.Context) { DeleteVolunteerApplication(c, db, volunteerService) })
	}
}

func ApplyAsVolunteer(c *gin.Context, db *database.Database, volunteerService services.VolunteerServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	var application models.Volunteer
	if err := c.ShouldBindJSON(&application); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	application.UserID = userID

	created, err := volunteerService.Apply(db, application)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrResourceExists):
			c.JSON(http.StatusConflict, gin.H{"error": "You already have a pending application"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

func GetMyApplications(c *gin.Context, db *database.Database, volunteerService services.VolunteerServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	applications, err := volunteerService.GetApplications(db, map[string]interface{}{"user_id": userID.String()})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, applications)
}

func GetVolunteerApplications(c *gin.Context, db *database.Database, volunteerService services.VolunteerServiceInterface) {
	params := make(map[string]interface{})

	if userID := c.Query("user_id"); userID != "" {
		params["user_id"] = userID
	}
	if status := c.Query("status"); status != "" {
		params["status"] = status
	}

	applications, err := volunteerService.GetApplications(db, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, applications)
}

func DecideVolunteerApplication(c *gin.Context, db *database.Database, volunteerService services.VolunteerServiceInterface) {
	var request volunteerDecisionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := volunteerService.Decide(db, c.Param("id"), models.VolunteerStatus(request.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be approved or rejected"})
		case errors.Is(err, services.ErrVolunteerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer application not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, application)
}

func DeleteVolunteerApplication(c *gin.Context, db *database.Database, volunteerService services.VolunteerServiceInterface) {
	if err := volunteerService.DeleteApplication(db, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrVolunteerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}
