package dbmodels

import "github.com/google/uuid"

type ExpenseTag struct {
	Base
	GroupID  uuid.UUID `json:"groupId" gorm:"type:uuid;index:expense_tag_group_index"`
	Label    string    `json:"label"`
	IconName string    `json:"iconName"`
}
