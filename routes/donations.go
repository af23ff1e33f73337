package routes

import (
	"errors"
	"net/http"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"
	"carebridge-org/carebridge/services"

	"github.com/gin-gonic/gin"
)

type donationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func RegisterDonationRoutes(protected, admin *gin.RouterGroup, db *database.Database, donationService services.DonationServiceInterface) {
	group := protected.Group("/donations")
	{
		group.POST("/", func(c *gin.Context) { CreateDonation(c, db, donationService) })
		group.GET("/mine", func(c *gin.Context) { GetMyDonations(c, db, donationService) })
	}

	adminGroup := admin.Group("/donations")
	{
		adminGroup.GET("/", func(c *gin.Context) { GetDonations(c, db, donationService) })
		adminGroup.GET("/:id", func(c *gin.Context) { GetDonationById(c, db, donationService) })
		adminGroup.PUT("/:id/status", func(c *gin.Context) { UpdateDonationStatus(c, db, donationService) })
		adminGroup.DELETE("/:id", func(c *gin.Context) { DeleteDonation(c, db, donationService) })
	}
}

func CreateDonation(c *gin.Context, db *database.Database, donationService services.DonationServiceInterface) {
	var donation models.Donation
	if err := c.ShouldBindJSON(&donation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Attach the donation to the authenticated account
	if userID, ok := currentUserID(c); ok {
		donation.UserID = &userID
	}
	donation.Status = models.DonationPending

	createdDonation, err := donationService.CreateDonation(db, donation)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, createdDonation)
}

func GetMyDonations(c *gin.Context, db *database.Database, donationService services.DonationServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	donations, err := donationService.GetDonations(db, map[string]interface{}{"user_id": userID.String()})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, donations)
}

func GetDonations(c *gin.Context, db *database.Database, donationService services.DonationServiceInterface) {
	params := make(map[string]interface{})

	if userID := c.Query("user_id"); userID != "" {
		params["user_id"] = userID
	}
	if status := c.Query("status"); status != "" {
		params["status"] = status
	}
	if purpose := c.Query("purpose"); purpose != "" {
		params["purpose"] = purpose
	}

	donations, err := donationService.GetDonations(db, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, donations)
}

func GetDonationById(c *gin.Context, db *database.Database, donationService services.DonationServiceInterface) {
	donation, err := donationService.GetDonationById(db, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrDonationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, donation)
}

func UpdateDonationStatus(c *gin.Context, db *database.Database, donationService services.DonationServiceInterface) {
	var request donationStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.DonationStatusFromString(request.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation status"})
		return
	}

	donation, err := donationService.UpdateStatus(db, c.Param("id"), status)
	if err != nil {
		if errors.Is(err, services.ErrDonationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, donation)
}

func DeleteDonation(c *gin.Context, db *database.Database, donationService services.DonationServiceInterface) {
	if err := donationService.DeleteDonation(db, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrDonationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}
