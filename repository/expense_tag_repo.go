package repository

import (
	"github.com/google/uuid"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"gorm.io/gorm"
)

// Repository for SQL operations on expense tags
type ExpenseTagRepo struct {
	DB *gorm.DB
}

func (repo *ExpenseTagRepo) ListByGroup(groupID uuid.UUID) ([]dbmodels.ExpenseTag, error) {
	var tags []dbmodels.ExpenseTag
	if err := repo.DB.Where("group_id = ?", groupID).Order("created_at asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (repo *ExpenseTagRepo) Get(id uuid.UUID) (*dbmodels.ExpenseTag, error) {
	var tag dbmodels.ExpenseTag
	if err := repo.DB.First(&tag, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (repo *ExpenseTagRepo) Create(tag *dbmodels.ExpenseTag) error {
	return repo.DB.Create(tag).Error
}

func (repo *ExpenseTagRepo) Update(tag *dbmodels.ExpenseTag) error {
	return repo.DB.Save(tag).Error
}

func (repo *ExpenseTagRepo) Delete(id uuid.UUID) error {
	return repo.DB.Delete(&dbmodels.ExpenseTag{}, "id = ?", id).Error
}
