package models

// CRUD request bodies. Decoded from a base map with utils.DecodeWeak so
// numeric fields arrive as either strings or numbers and normalize server-side.

type GroupCreateRequest struct {
	Name         string `mapstructure:"name"`
	CurrencyCode string `mapstructure:"currencyCode"`
}

type GroupUpdateRequest struct {
	Name                   string  `mapstructure:"name"`
	CurrencyCode           string  `mapstructure:"currencyCode"`
	SettlementMethod       *string `mapstructure:"settlementMethod"`
	TreasurerParticipantID *string `mapstructure:"treasurerParticipantId"`
	SettlementFreezeAt     *int64  `mapstructure:"settlementFreezeAt"`
	SettlementSnapshotJson *string `mapstructure:"settlementSnapshotJson"`
}

type FreezeSettlementRequest struct {
	SettlementSnapshotJson string `mapstructure:"settlementSnapshotJson"`
	SettlementFreezeAt     int64  `mapstructure:"settlementFreezeAt"`
}

type ParticipantCreateRequest struct {
	GroupID string `mapstructure:"groupId"`
	Name    string `mapstructure:"name"`
	Order   int64  `mapstructure:"order"`
}

type ParticipantUpdateRequest struct {
	Name  string `mapstructure:"name"`
	Order int64  `mapstructure:"order"`
}

type ExpenseCreateRequest struct {
	GroupID            string  `mapstructure:"groupId"`
	PayerParticipantID string  `mapstructure:"payerParticipantId"`
	AmountCents        int64   `mapstructure:"amountCents"`
	CurrencyCode       string  `mapstructure:"currencyCode"`
	Title              string  `mapstructure:"title"`
	Description        *string `mapstructure:"description"`
	Date               int64   `mapstructure:"date"`
	SplitType          string  `mapstructure:"splitType"`
	SplitSharesJson    string  `mapstructure:"splitSharesJson"`
	Type               *string `mapstructure:"type"`
	ToParticipantID    *string `mapstructure:"toParticipantId"`
	Tag                *string `mapstructure:"tag"`
	LineItemsJson      *string `mapstructure:"lineItemsJson"`
	ReceiptImagePath   *string `mapstructure:"receiptImagePath"`
}

type ExpenseUpdateRequest struct {
	Title            string  `mapstructure:"title"`
	AmountCents      int64   `mapstructure:"amountCents"`
	Date             int64   `mapstructure:"date"`
	SplitSharesJson  string  `mapstructure:"splitSharesJson"`
	Tag              *string `mapstructure:"tag"`
	Description      *string `mapstructure:"description"`
	LineItemsJson    *string `mapstructure:"lineItemsJson"`
	ReceiptImagePath *string `mapstructure:"receiptImagePath"`
}

type ExpenseTagCreateRequest struct {
	GroupID  string `mapstructure:"groupId"`
	Label    string `mapstructure:"label"`
	IconName string `mapstructure:"iconName"`
}

type ExpenseTagUpdateRequest struct {
	Label    string `mapstructure:"label"`
	IconName string `mapstructure:"iconName"`
}

type DeviceTokenUpdateRequest struct {
	UserID string `mapstructure:"user_id"`
	Token  string `mapstructure:"token"`
	Locale string `mapstructure:"locale"`
}

type MemberAddRequest struct {
	UserID string `mapstructure:"user_id"`
}

type InviteCreateRequest struct {
	ExpiresInHours int64 `mapstructure:"expiresInHours"`
}
