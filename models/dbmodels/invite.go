package dbmodels

import "github.com/google/uuid"

// Invite is a shareable group invite link token.
type Invite struct {
	Base
	GroupID   uuid.UUID `json:"groupId" gorm:"type:uuid;index:invite_group_index"`
	Token     string    `json:"token" gorm:"index:invite_token_index,unique"`
	ExpiresAt int64     `json:"expiresAt"`
}
