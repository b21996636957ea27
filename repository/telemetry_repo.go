package repository

import (
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"gorm.io/gorm"
)

// Repository for SQL operations on telemetry events
type TelemetryRepo struct {
	DB *gorm.DB
}

func (repo *TelemetryRepo) Insert(event string, timestamp string, data string) error {
	row := &dbmodels.TelemetryEvent{
		Event:     event,
		Timestamp: timestamp,
		Data:      data,
	}
	return repo.DB.Create(row).Error
}
