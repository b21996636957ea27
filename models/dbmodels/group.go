package dbmodels

// Group is an expense-splitting group.
// The settlement fields are only set while a settlement snapshot is frozen.
type Group struct {
	Base
	Name                   string  `json:"name"`
	CurrencyCode           string  `json:"currencyCode"`
	SettlementMethod       *string `json:"settlementMethod,omitempty"`
	TreasurerParticipantID *string `json:"treasurerParticipantId,omitempty"`
	SettlementFreezeAt     *int64  `json:"settlementFreezeAt,omitempty"`
	SettlementSnapshotJson *string `json:"settlementSnapshotJson,omitempty"`
}
