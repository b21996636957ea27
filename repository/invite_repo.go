package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/google/uuid"
	"github.com/hisab-app/hisab-server/database"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

// How long a validated invite stays in the cache. Short enough that a
// revoked invite stops resolving quickly.
const inviteCacheTTL = 10 * time.Minute

// Repository for SQL operations on invite links
type InviteRepo struct {
	DB *gorm.DB
}

func inviteCacheKey(token string) string {
	return fmt.Sprintf("invite:%s", token)
}

// Create mints a new invite token for a group.
func (repo *InviteRepo) Create(groupID uuid.UUID, ttl time.Duration) (*dbmodels.Invite, error) {
	invite := &dbmodels.Invite{
		GroupID:   groupID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(ttl).UnixMilli(),
	}
	if err := repo.DB.Create(invite).Error; err != nil {
		return nil, err
	}
	return invite, nil
}

// GetByToken resolves an invite by its token, via the cache when possible.
// Returns gorm.ErrRecordNotFound when no such invite exists; expiry is the
// caller's concern since a cached invite can outlive its expiry.
func (repo *InviteRepo) GetByToken(token string) (*dbmodels.Invite, error) {
	cached, err := database.GetRedisDB().Get(inviteCacheKey(token))
	if err == nil {
		var invite dbmodels.Invite
		if err = json.Unmarshal([]byte(cached), &invite); err == nil {
			return &invite, nil
		}
		klog.Errorf("Error unmarshalling cached invite %v", err)
	} else if err != redis.Nil {
		klog.Errorf("Error reading invite cache %v", err)
	}

	var invite dbmodels.Invite
	if err := repo.DB.Where("token = ?", token).First(&invite).Error; err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(&invite); err == nil {
		if err = database.GetRedisDB().Set(inviteCacheKey(token), string(encoded), inviteCacheTTL); err != nil {
			klog.Errorf("Error caching invite %v", err)
		}
	}
	return &invite, nil
}

// DeleteExpired removes invites past their expiry. Run periodically.
func (repo *InviteRepo) DeleteExpired() (int64, error) {
	result := repo.DB.Delete(&dbmodels.Invite{}, "expires_at > 0 AND expires_at < ?", time.Now().UnixMilli())
	return result.RowsAffected, result.Error
}
