package dbmodels

import "github.com/google/uuid"

// Expense rows cover both regular expenses and transfers between
// participants (Type "expense" or "transfer"). Amounts are integer
// minor units (cents).
type Expense struct {
	Base
	GroupID            uuid.UUID `json:"groupId" gorm:"type:uuid;index:expense_group_index"`
	PayerParticipantID uuid.UUID `json:"payerParticipantId" gorm:"type:uuid"`
	AmountCents        int64     `json:"amountCents"`
	CurrencyCode       string    `json:"currencyCode"`
	Title              string    `json:"title"`
	Description        *string   `json:"description,omitempty"`
	Date               int64     `json:"date"`
	SplitType          string    `json:"splitType"`
	SplitSharesJson    string    `json:"splitSharesJson"`
	Type               string    `json:"type"`
	ToParticipantID    *string   `json:"toParticipantId,omitempty"`
	Tag                *string   `json:"tag,omitempty"`
	LineItemsJson      *string   `json:"lineItemsJson,omitempty"`
	ReceiptImagePath   *string   `json:"receiptImagePath,omitempty"`
}
