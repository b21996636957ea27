package notification

import (
	"fmt"

	"github.com/hisab-app/hisab-server/models"
	"golang.org/x/exp/slices"
)

// Text is an ephemeral title/body pair, derived per token, never persisted.
type Text struct {
	Title string
	Body  string
}

var expenseActions = []string{models.ActionExpenseCreated, models.ActionExpenseUpdated}

// BuildText maps a trigger action and a device locale to notification text.
// Pure function; the caller validates the payload. Unknown actions get the
// generic fallback pair rather than an error.
func BuildText(action string, expenseTitle *string, amountCents *int64, currencyCode *string, locale string) Text {
	strs := StringsForLocale(locale)

	if slices.Contains(expenseActions, action) {
		label := strs.NewExpenseLabel
		if action == models.ActionExpenseUpdated {
			label = strs.ExpenseUpdatedLabel
		}
		title := strs.GenericExpense
		if expenseTitle != nil && *expenseTitle != "" {
			title = *expenseTitle
		}
		body := fmt.Sprintf("%s: %s", label, title)
		if amountCents != nil && currencyCode != nil && *currencyCode != "" {
			// Amounts are stored as integer minor units
			body = fmt.Sprintf("%s (%.2f %s)", body, float64(*amountCents)/100, *currencyCode)
		}
		return Text{Title: title, Body: body}
	}

	if action == models.ActionMemberJoined {
		return Text{Title: strs.MemberJoinedTitle, Body: strs.MemberJoinedBody}
	}

	return Text{Title: strs.FallbackTitle, Body: strs.FallbackBody}
}
