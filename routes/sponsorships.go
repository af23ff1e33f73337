package routes

import (
	"errors"
	"net/http"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"
	"carebridge-org/carebridge/services"

	"github.com/gin-gonic/gin"
)

func RegisterSponsorshipRoutes(protected, admin *gin.RouterGroup, db *database.Database, sponsorshipService services.SponsorshipServiceInterface) {
	group := protected.Group("/sponsorships")
	{
		group.POST("/", func(c *gin.Context) { CreateSponsorship(c, db, sponsorshipService) })
		group.GET("/mine", func(c *gin.Context) { GetMySponsorships(c, db, sponsorshipService) })
	}

	adminGroup := admin.Group("/sponsorships")
	{
		adminGroup.GET("/", func(c *gin.Context) { GetSponsorships(c, db, sponsorshipService) })
		adminGroup.GET("/:id", func(c *gin.Context) { GetSponsorshipById(c, db, sponsorshipService) })
		adminGroup.PUT("/:id", func(c *gin.Context) { UpdateSponsorship(c, db, sponsorshipService) })
		adminGroup.DELETE("/:id", func(c *gin.Context) { DeleteSponsorship(c, db, sponsorshipService) })
	}
}

func CreateSponsorship(c *gin.Context, db *database.Database, sponsorshipService services.SponsorshipServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	var sponsorship models.Sponsorship
	if err := c.ShouldBindJSON(&sponsorship); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sponsorship.UserID = userID

	created, err := sponsorshipService.CreateSponsorship(db, sponsorship)
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

func GetMySponsorships(c *gin.Context, db *database.Database, sponsorshipService services.SponsorshipServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	sponsorships, err := sponsorshipService.GetSponsorships(db, map[string]interface{}{"user_id": userID.String()})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sponsorships)
}

func GetSponsorships(c *gin.Context, db *database.Database, sponsorshipService services.SponsorshipServiceInterface) {
	params := make(map[string]interface{})

	if userID := c.Query("user_id"); userID != "" {
		params["user_id"] = userID
	}
	if status := c.Query("status"); status != "" {
		params["status"] = status
	}
	if program := c.Query("program"); program != "" {
		params["program"] = program
	}

	sponsorships, err := sponsorshipService.GetSponsorships(db, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sponsorships)
}

func GetSponsorshipById(c *gin.Context, db *database.Database, sponsorshipService services.SponsorshipServiceInterface) {
	sponsorship, err := sponsorshipService.GetSponsorshipById(db, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrSponsorshipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sponsorship not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sponsorship)
}

func UpdateSponsorship(c *gin.Context, db *database.Database, sponsorshipService services.SponsorshipServiceInterface) {
	var sponsorship models.Sponsorship
	if err := c.ShouldBindJSON(&sponsorship); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := sponsorshipService.UpdateSponsorship(db, c.Param("id"), sponsorship)
	if err != nil {
		if errors.Is(err, services.ErrSponsorshipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sponsorship not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteSponsorship(c *gin.Context, db *database.Database, sponsorshipService services.SponsorshipServiceInterface) {
	if err := sponsorshipService.DeleteSponsorship(db, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrSponsorshipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sponsorship not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}
