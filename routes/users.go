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

func RegisterUserRoutes(protected, admin *gin.RouterGroup, db *database.Database, userService services.UserServiceInterface) {
	group := protected.Group("/users")
	{
		group.GET("/:id", func(c *gin.Context) { GetUserById(c, db, userService) })
		group.PUT("/:id", func(c *gin.Context) { UpdateUser(c, db, userService) })
	}

	adminGroup := admin.Group("/users")
	{
		adminGroup.GET("/", func(c *gin.Context) { GetUsers(c, db, userService) })
		adminGroup.DELETE("/:id", func(c *gin.Context) { DeleteUser(c, db, userService) })
	}
}

// isSelfOrAdmin limits profile access to the owner or an admin
func isSelfOrAdmin(c *gin.Context, id string) bool {
	roleValue, _ := c.Get("role")
	if roleStr, ok := roleValue.(string); ok && roleStr == string(models.RoleAdmin) {
		return true
	}

	userIDValue, exists := c.Get("userID")
	if !exists {
		return false
	}
	userID, ok := userIDValue.(uuid.UUID)
	return ok && userID.String() == id
}

func GetUserById(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	id := c.Param("id")
	if !isSelfOrAdmin(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own account"})
		return
	}

	user, err := userService.GetUserById(db, id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateUser(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	id := c.Param("id")
	if !isSelfOrAdmin(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own account"})
		return
	}

	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Role changes go through the admin back-office, not profile edits
	roleValue, _ := c.Get("role")
	if roleStr, ok := roleValue.(string); !ok || roleStr != string(models.RoleAdmin) {
		user.Role = ""
	}

	updatedUser, err := userService.UpdateUser(db, id, user)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updatedUser)
}

func DeleteUser(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	id := c.Param("id")
	if err := userService.DeleteUser(db, id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}

func GetUsers(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	params := make(map[string]interface{})

	if email := c.Query("email"); email != "" {
		params["email"] = email
	}
	if role := c.Query("role"); role != "" {
		params["role"] = role
	}

	users, err := userService.GetUsers(db, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}
