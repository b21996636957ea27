package repository

import (
	"github.com/google/uuid"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"gorm.io/gorm"
)

// Repository for SQL operations on expenses
type ExpenseRepo struct {
	DB *gorm.DB
}

// Newest first, same order the mobile client renders
func (repo *ExpenseRepo) ListByGroup(groupID uuid.UUID) ([]dbmodels.Expense, error) {
	var expenses []dbmodels.Expense
	if err := repo.DB.Where("group_id = ?", groupID).Order("created_at desc").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (repo *ExpenseRepo) Get(id uuid.UUID) (*dbmodels.Expense, error) {
	var expense dbmodels.Expense
	if err := repo.DB.First(&expense, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (repo *ExpenseRepo) Create(expense *dbmodels.Expense) error {
	return repo.DB.Create(expense).Error
}

func (repo *ExpenseRepo) Update(expense *dbmodels.Expense) error {
	return repo.DB.Save(expense).Error
}

func (repo *ExpenseRepo) Delete(id uuid.UUID) error {
	return repo.DB.Delete(&dbmodels.Expense{}, "id = ?", id).Error
}
