package services

import (
	"testing"

	"carebridge-org/carebridge/models"
	"carebridge-org/carebridge/testutils"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"A Day at the Shelter": "a-day-at-the-shelter",
		"Winter Appeal 2026!":  "winter-appeal-2026",
		"  Trimmed   spaces  ": "trimmed-spaces",
		"Déjà vu":              "d-j-vu",
		"already-slugged":      "already-slugged",
	}

	for title, expected := range cases {
		assert.Equal(t, expected, Slugify(title), "title %q", title)
	}
}

func TestCreateStory_DerivesSlug(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "stories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	service := &StoryService{}
	story, err := service.CreateStory(db, models.Story{
		Title:    "A Day at the Shelter",
		Body:     "It was a good day.",
		AuthorID: uuid.New(),
	})
	assert.NoError(t, err)
	assert.Equal(t, "a-day-at-the-shelter", story.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStory_Validation(t *testing.T) {
	db, _, close := testutils.SetupMockDB()
	defer close()

	service := &StoryService{}
	_, err := service.CreateStory(db, models.Story{Title: "No body"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetStoryBySlug_NotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT (.+) FROM "stories" WHERE slug = \$1 ORDER BY "stories"."id" LIMIT \$2`).
		WithArgs("missing-slug", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	service := &StoryService{}
	_, err := service.GetStoryBySlug(db, "missing-slug")
	assert.ErrorIs(t, err, ErrStoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
