package dbmodels

import "github.com/google/uuid"

// GroupMember is the membership fact between a group and an app user.
// Membership is owned by the auth layer; the notification pipeline only reads it.
type GroupMember struct {
	Base
	GroupID uuid.UUID `json:"group_id" gorm:"type:uuid;index:group_member_index,unique"`
	UserID  string    `json:"user_id" gorm:"index:group_member_index,unique"`
}
