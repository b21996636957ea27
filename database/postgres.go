package database

import (
	"fmt"

	"github.com/hisab-app/hisab-server/models/dbmodels"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Host     string
	Port     string
	Password string
	User     string
	DBName   string
	SSLMode  string
}

func NewConnection(config *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return db, err
	}
	return db, nil
}

func allModels() []interface{} {
	return []interface{}{
		&dbmodels.Group{},
		&dbmodels.Participant{},
		&dbmodels.Expense{},
		&dbmodels.ExpenseTag{},
		&dbmodels.GroupMember{},
		&dbmodels.DeviceToken{},
		&dbmodels.Invite{},
		&dbmodels.TelemetryEvent{},
	}
}

func DropAndCreateTables(db *gorm.DB) error {
	for _, model := range allModels() {
		if err := db.Migrator().DropTable(model); err != nil {
			return err
		}
		if err := db.Migrator().CreateTable(model); err != nil {
			return err
		}
	}
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(allModels()...)
}
