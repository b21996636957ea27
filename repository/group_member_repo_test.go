package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMemberUserIDs(t *testing.T) {
	repo := &GroupMemberRepo{DB: testDb(t)}
	groupID := uuid.New()
	otherGroupID := uuid.New()

	_, err := repo.AddMember(groupID, "user-a")
	assert.Nil(t, err)
	_, err = repo.AddMember(groupID, "User-B")
	assert.Nil(t, err)
	_, err = repo.AddMember(otherGroupID, "user-c")
	assert.Nil(t, err)

	// No exclusion
	userIDs, err := repo.MemberUserIDs(groupID.String(), "")
	assert.Nil(t, err)
	assert.Len(t, userIDs, 2)

	// Exclusion matches regardless of the stored id's casing
	userIDs, err = repo.MemberUserIDs(groupID.String(), "user-b")
	assert.Nil(t, err)
	assert.Equal(t, []string{"user-a"}, userIDs)

	// Membership is scoped to the group
	userIDs, err = repo.MemberUserIDs(otherGroupID.String(), "user-a")
	assert.Nil(t, err)
	assert.Equal(t, []string{"user-c"}, userIDs)
}

func TestAddMemberIdempotent(t *testing.T) {
	repo := &GroupMemberRepo{DB: testDb(t)}
	groupID := uuid.New()

	first, err := repo.AddMember(groupID, "user-a")
	assert.Nil(t, err)
	second, err := repo.AddMember(groupID, "user-a")
	assert.Nil(t, err)
	assert.Equal(t, first.ID, second.ID)

	userIDs, err := repo.MemberUserIDs(groupID.String(), "")
	assert.Nil(t, err)
	assert.Len(t, userIDs, 1)
}
