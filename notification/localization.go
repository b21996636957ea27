package notification

import "strings"

// DefaultLocale is used whenever a device has no locale or an unknown one.
const DefaultLocale = "en"

// Strings is the notification string table for one locale.
type Strings struct {
	NewExpenseLabel     string
	ExpenseUpdatedLabel string
	GenericExpense      string
	MemberJoinedTitle   string
	MemberJoinedBody    string
	FallbackTitle       string
	FallbackBody        string
}

var localeTable = map[string]Strings{
	"en": {
		NewExpenseLabel:     "New expense",
		ExpenseUpdatedLabel: "Expense updated",
		GenericExpense:      "Expense",
		MemberJoinedTitle:   "Group activity",
		MemberJoinedBody:    "A new member joined the group.",
		FallbackTitle:       "Group activity",
		FallbackBody:        "Something changed in your group.",
	},
	"ur": {
		NewExpenseLabel:     "نیا خرچ",
		ExpenseUpdatedLabel: "خرچ اپ ڈیٹ ہوا",
		GenericExpense:      "خرچ",
		MemberJoinedTitle:   "گروپ سرگرمی",
		MemberJoinedBody:    "ایک نیا رکن گروپ میں شامل ہوا۔",
		FallbackTitle:       "گروپ سرگرمی",
		FallbackBody:        "آپ کے گروپ میں کچھ تبدیل ہوا۔",
	},
	"ar": {
		NewExpenseLabel:     "مصروف جديد",
		ExpenseUpdatedLabel: "تم تحديث المصروف",
		GenericExpense:      "مصروف",
		MemberJoinedTitle:   "نشاط المجموعة",
		MemberJoinedBody:    "انضم عضو جديد إلى المجموعة.",
		FallbackTitle:       "نشاط المجموعة",
		FallbackBody:        "حدث تغيير في مجموعتك.",
	},
	"es": {
		NewExpenseLabel:     "Nuevo gasto",
		ExpenseUpdatedLabel: "Gasto actualizado",
		GenericExpense:      "Gasto",
		MemberJoinedTitle:   "Actividad del grupo",
		MemberJoinedBody:    "Un nuevo miembro se unió al grupo.",
		FallbackTitle:       "Actividad del grupo",
		FallbackBody:        "Algo cambió en tu grupo.",
	},
	"fr": {
		NewExpenseLabel:     "Nouvelle dépense",
		ExpenseUpdatedLabel: "Dépense mise à jour",
		GenericExpense:      "Dépense",
		MemberJoinedTitle:   "Activité du groupe",
		MemberJoinedBody:    "Un nouveau membre a rejoint le groupe.",
		FallbackTitle:       "Activité du groupe",
		FallbackBody:        "Quelque chose a changé dans votre groupe.",
	},
}

// StringsForLocale resolves a device locale like "es", "es-MX" or "ur_PK"
// to a string table, falling back to the default locale.
func StringsForLocale(locale string) Strings {
	normalized := strings.ToLower(strings.TrimSpace(locale))
	if table, ok := localeTable[normalized]; ok {
		return table
	}
	// Try the primary language subtag
	if idx := strings.IndexAny(normalized, "-_"); idx > 0 {
		if table, ok := localeTable[normalized[:idx]]; ok {
			return table
		}
	}
	return localeTable[DefaultLocale]
}
