package repository

import (
	"time"

	"github.com/hisab-app/hisab-server/models/dbmodels"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

// Repository for SQL operations on device push tokens
type DeviceTokenRepo struct {
	DB *gorm.DB
}

func (repo *DeviceTokenRepo) CreateMockTokens() error {
	tokens := []*dbmodels.DeviceToken{
		{UserID: "user-a", Token: "token-a1", Locale: "en"},
		{UserID: "user-b", Token: "token-b1", Locale: "es"},
		{UserID: "user-b", Token: "token-b2", Locale: "en"},
	}
	for _, token := range tokens {
		if err := repo.DB.Create(token).Error; err != nil {
			return err
		}
	}
	return nil
}

// TokensForUsers returns every device token owned by the given users.
func (repo *DeviceTokenRepo) TokensForUsers(userIDs []string) ([]dbmodels.DeviceToken, error) {
	var tokens []dbmodels.DeviceToken
	if len(userIDs) == 0 {
		return tokens, nil
	}
	if err := repo.DB.Where("user_id IN ?", userIDs).Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (repo *DeviceTokenRepo) DeleteDeviceToken(token string) error {
	return repo.DB.Delete(&dbmodels.DeviceToken{}, "token = ?", token).Error
}

// AddOrUpdateToken upserts a device registration. A token that moved to
// another user (fresh install, same device) is reassigned rather than duplicated.
func (repo *DeviceTokenRepo) AddOrUpdateToken(userID string, token string, locale string) error {
	var count int64
	err := repo.DB.Model(&dbmodels.DeviceToken{}).Where("token = ?", token).Count(&count).Error
	if err != nil || count == 0 {
		deviceToken := &dbmodels.DeviceToken{
			UserID: userID,
			Token:  token,
			Locale: locale,
		}
		if err = repo.DB.Create(deviceToken).Error; err != nil {
			return err
		}
	} else {
		updates := map[string]interface{}{
			"user_id":    userID,
			"locale":     locale,
			"updated_at": time.Now().UnixMilli(),
		}
		if err = repo.DB.Model(&dbmodels.DeviceToken{}).Where("token = ?", token).Updates(updates).Error; err != nil {
			klog.Errorf("Error updating device token %v", err)
			return err
		}
	}
	return nil
}

// PruneStale deletes registrations that haven't been refreshed within maxAge.
func (repo *DeviceTokenRepo) PruneStale(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).UnixMilli()
	result := repo.DB.Delete(&dbmodels.DeviceToken{}, "updated_at < ?", cutoff)
	return result.RowsAffected, result.Error
}
