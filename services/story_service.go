package services

import (
	"errors"
	"regexp"
	"strings"

	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"

	"gorm.io/gorm"
)

type StoryServiceInterface interface {
	CreateStory(db *database.Database, story models.Story) (models.Story, error)
	GetStoryById(db *database.Database, id string) (models.Story, error)
	GetStoryBySlug(db *database.Database, slug string) (models.Story, error)
	GetStories(db *database.Database, params map[string]interface{}) ([]models.Story, error)
	UpdateStory(db *database.Database, id string, updatedData models.Story) (models.Story, error)
	SetPublished(db *database.Database, id string, published bool) (models.Story, error)
	DeleteStory(db *database.Database, id string) error
}

type StoryService struct{}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a story title
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *StoryService) CreateStory(db *database.Database, story models.Story) (models.Story, error) {
	if story.Title == "" || story.Body == "" {
		return models.Story{}, ErrValidation
	}
	if story.Slug == "" {
		story.Slug = Slugify(story.Title)
	}

	if err := db.DB.Create(&story).Error; err != nil {
		return models.Story{}, err
	}
	return story, nil
}

func (s *StoryService) GetStoryById(db *database.Database, id string) (models.Story, error) {
	var story models.Story
	if err := db.DB.First(&story, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Story{}, ErrStoryNotFound
		}
		return models.Story{}, err
	}
	return story, nil
}

func (s *StoryService) GetStoryBySlug(db *database.Database, slug string) (models.Story, error) {
	var story models.Story
	if err := db.DB.Where("slug = ?", slug).First(&story).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Story{}, ErrStoryNotFound
		}
		return models.Story{}, err
	}
	return story, nil
}

func (s *StoryService) GetStories(db *database.Database, params map[string]interface{}) ([]models.Story, error) {
	var stories []models.Story
	query := db.DB

	if published, ok := params["published"].(bool); ok {
		query = query.Where("published = ?", published)
	}

	if authorID, ok := params["author_id"].(string); ok && authorID != "" {
		query = query.Where("author_id = ?", authorID)
	}

	if err := query.Order("created_at DESC").Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

func (s *StoryService) UpdateStory(db *database.Database, id string, updatedData models.Story) (models.Story, error) {
	story, err := s.GetStoryById(db, id)
	if err != nil {
		return models.Story{}, err
	}

	if err := db.DB.Model(&story).Updates(updatedData).Error; err != nil {
		return models.Story{}, err
	}
	return story, nil
}

func (s *StoryService) SetPublished(db *database.Database, id string, published bool) (models.Story, error) {
	story, err := s.GetStoryById(db, id)
	if err != nil {
		return models.Story{}, err
	}

	if err := db.DB.Model(&story).Update("published", published).Error; err != nil {
		return models.Story{}, err
	}
	story.Published = published
	return story, nil
}

func (s *StoryService) DeleteStory(db *database.Database, id string) error {
	result := db.DB.Delete(&models.Story{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStoryNotFound
	}
	return nil
}

var StoryServiceInstance StoryServiceInterface = &StoryService{}
