package repository

import (
	"os"
	"testing"

	"github.com/hisab-app/hisab-server/database"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// testDb connects to the mock database and recreates the schema. Tests
// that need postgres are skipped when DB_MOCK_HOST isn't set.
func testDb(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("DB_MOCK_HOST") == "" {
		t.Skip("DB_MOCK_HOST not set")
	}
	mockDb, err := database.NewConnection(&database.Config{
		Host:     os.Getenv("DB_MOCK_HOST"),
		Port:     os.Getenv("DB_MOCK_PORT"),
		Password: os.Getenv("DB_MOCK_PASS"),
		User:     os.Getenv("DB_MOCK_USER"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
		DBName:   "testing",
	})
	assert.Nil(t, err)
	err = database.DropAndCreateTables(mockDb)
	assert.Nil(t, err)
	return mockDb
}
