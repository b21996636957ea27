package dbmodels

// DeviceToken maps a user to one FCM registration token.
// One user may own several rows (multi-device). A token string uniquely
// identifies a device registration; rows are deleted once the provider
// reports the token as unregistered.
type DeviceToken struct {
	Base
	UserID string `json:"user_id" gorm:"index:device_token_user_index"`
	Token  string `json:"token" gorm:"index:device_token_index,unique"`
	Locale string `json:"locale"`
}
