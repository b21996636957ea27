package repository

import (
	"github.com/google/uuid"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"gorm.io/gorm"
)

// Repository for SQL operations on group membership
type GroupMemberRepo struct {
	DB *gorm.DB
}

// MemberUserIDs returns the user ids belonging to a group, excluding the
// acting user. excludeUserID must already be normalized (trimmed, lower-cased);
// the comparison against stored ids is case-insensitive.
func (repo *GroupMemberRepo) MemberUserIDs(groupID string, excludeUserID string) ([]string, error) {
	var userIDs []string
	query := repo.DB.Model(&dbmodels.GroupMember{}).Where("group_id = ?", groupID)
	if excludeUserID != "" {
		query = query.Where("LOWER(user_id) <> ?", excludeUserID)
	}
	if err := query.Pluck("user_id", &userIDs).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}

// AddMember records a membership fact, idempotently.
func (repo *GroupMemberRepo) AddMember(groupID uuid.UUID, userID string) (*dbmodels.GroupMember, error) {
	var existing dbmodels.GroupMember
	err := repo.DB.Where("group_id = ?", groupID).Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	member := &dbmodels.GroupMember{
		GroupID: groupID,
		UserID:  userID,
	}
	if err := repo.DB.Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}
