package repository

import (
	"github.com/google/uuid"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"gorm.io/gorm"
)

// Repository for SQL operations on groups
type GroupRepo struct {
	DB *gorm.DB
}

func (repo *GroupRepo) List() ([]dbmodels.Group, error) {
	var groups []dbmodels.Group
	if err := repo.DB.Order("created_at desc").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (repo *GroupRepo) Get(id uuid.UUID) (*dbmodels.Group, error) {
	var group dbmodels.Group
	if err := repo.DB.First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (repo *GroupRepo) Create(group *dbmodels.Group) error {
	return repo.DB.Create(group).Error
}

func (repo *GroupRepo) Update(group *dbmodels.Group) error {
	return repo.DB.Save(group).Error
}

func (repo *GroupRepo) Delete(id uuid.UUID) error {
	return repo.DB.Delete(&dbmodels.Group{}, "id = ?", id).Error
}
