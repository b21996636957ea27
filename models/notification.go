package models

import (
	"encoding/json"

	"github.com/hisab-app/hisab-server/utils"
)

// Actions emitted by the database trigger on group activity
const (
	ActionExpenseCreated = "expense_created"
	ActionExpenseUpdated = "expense_updated"
	ActionMemberJoined   = "member_joined"
)

// FlexInt64 unmarshals from either a JSON number or a numeric string.
// Older mobile clients send numeric args as strings; accept both
type FlexInt64 int64

func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	value, err := utils.ToInt64(raw)
	if err != nil {
		return err
	}
	*f = FlexInt64(value)
	return nil
}

// TriggerPayload is the body the database trigger posts when group data changes.
// Consumed once per invocation, never persisted.
type TriggerPayload struct {
	GroupID      string     `json:"group_id"`
	ActorUserID  string     `json:"actor_user_id"`
	Action       string     `json:"action"`
	ExpenseTitle *string    `json:"expense_title,omitempty"`
	AmountCents  *FlexInt64 `json:"amount_cents,omitempty"`
	CurrencyCode *string    `json:"currency_code,omitempty"`
}

// SendNotificationResponse is the JSON summary returned to the trigger.
// Errors carries at most a handful of samples, never the full list.
type SendNotificationResponse struct {
	Sent    int      `json:"sent"`
	Total   int      `json:"total"`
	Errors  []string `json:"errors,omitempty"`
	Message string   `json:"message,omitempty"`
}
