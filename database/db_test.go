package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestClose(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	database := &Database{DB: db}

	assert.NotPanics(t, func() {
		database.Close()
	})
}

func TestQuery(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	database := &Database{DB: db}

	err = database.Execute("CREATE TABLE supporters (id INTEGER PRIMARY KEY, email TEXT)")
	assert.NoError(t, err)
	err = database.Execute("INSERT INTO supporters (email) VALUES (?)", "ada@example.com")
	assert.NoError(t, err)

	result, err := database.Query("SELECT * FROM supporters WHERE email = ?", "ada@example.com")
	assert.NoError(t, err)

	var rows []map[string]interface{}
	err = result.Scan(&rows).Error
	assert.NoError(t, err)

	assert.Len(t, rows, 1)
	assert.Equal(t, "ada@example.com", rows[0]["email"])
}

func TestExecute(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	database := &Database{DB: db}

	err = database.Execute("CREATE TABLE supporters (id INTEGER PRIMARY KEY, email TEXT)")
	assert.NoError(t, err)

	err = database.Execute("INSERT INTO supporters (email) VALUES (?)", "ada@example.com")
	assert.NoError(t, err)

	var count int64
	err = db.Table("supporters").Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
