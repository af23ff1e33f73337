package routes

import (
	"errors"
	"net/http"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"
	"carebridge-org/carebridge/services"

	"github.com/gin-gonic/gin"
)

type storyPublishRequest struct {
	Published *bool `json:"published" binding:"required"`
}

func RegisterStoryRoutes(public, admin *gin.RouterGroup, db *database.Database, storyService services.StoryServiceInterface) {
	group := public.Group("/stories")
	{
		group.GET("/", func(c *gin.Context) { GetPublishedStories(c, db, storyService) })
		group.GET("/:slug", func(c *gin.Context) { GetStoryBySlug(c, db, storyService) })
	}

	adminGroup := admin.Group("/stories")
	{
		adminGroup.GET("/", func(c *gin.Context) { GetStories(c, db, storyService) })
		adminGroup.POST("/", func(c *gin.Context) { CreateStory(c, db, storyService) })
		adminGroup.PUT("/:id", func(c *gin.Context) { UpdateStory(c, db, storyService) })
		adminGroup.PUT("/:id/publish", func(c *gin.Context) { PublishStory(c, db, storyService) })
		adminGroup.DELETE("/:id", func(c *gin.Context) { DeleteStory(c, db, storyService) })
	}
}

func GetPublishedStories(c *gin.Context, db *database.Database, storyService services.StoryServiceInterface) {
	stories, err := storyService.GetStories(db, map[string]interface{}{"published": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stories)
}

func GetStoryBySlug(c *gin.Context, db *database.Database, storyService services.StoryServiceInterface) {
	story, err := storyService.GetStoryBySlug(db, c.Param("slug"))
	if err != nil || !story.Published {
		if err == nil || errors.Is(err, services.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, story)
}

func GetStories(c *gin.Context, db *database.Database, storyService services.StoryServiceInterface) {
	params := make(map[string]interface{})

	if authorID := c.Query("author_id"); authorID != "" {
		params["author_id"] = authorID
	}

	stories, err := storyService.GetStories(db, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stories)
}

func CreateStory(c *gin.Context, db *database.Database, storyService services.StoryServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	var story models.Story
	if err := c.ShouldBindJSON(&story); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	story.AuthorID = userID

	created, err := storyService.CreateStory(db, story)
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

func UpdateStory(c *gin.Context, db *database.Database, storyService services.StoryServiceInterface) {
	var story models.Story
	if err := c.ShouldBindJSON(&story); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := storyService.UpdateStory(db, c.Param("id"), story)
	if err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func PublishStory(c *gin.Context, db *database.Database, storyService services.StoryServiceInterface) {
	var request storyPublishRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story, err := storyService.SetPublished(db, c.Param("id"), *request.Published)
	if err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, story)
}

func DeleteStory(c *gin.Context, db *database.Database, storyService services.StoryServiceInterface) {
	if err := storyService.DeleteStory(db, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, gin.H{})
}
