package dbmodels

import "github.com/google/uuid"

type Participant struct {
	Base
	GroupID uuid.UUID `json:"groupId" gorm:"type:uuid;index:participant_group_index"`
	Name    string    `json:"name"`
	// "order" is a reserved word in SQL
	Order int64 `json:"order" gorm:"column:sort_order"`
}
