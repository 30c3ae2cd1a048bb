package reminder

import (
	"fmt"
	"time"
	"unicode/utf8"

	"debt_reminder/internal/model"
	"debt_reminder/internal/utils"

	"github.com/shopspring/decimal"
)

// MaxSMSLength предел длины одного SMS
const MaxSMSLength = 160

// composeReminder текст одиночного напоминания. Если длинный вариант не влезает
// в SMS, берется короткий.
func composeReminder(name string, balance decimal.Decimal) string {
	amount := utils.FormatPeso(balance)
	msg := fmt.Sprintf("PAYMENT REMINDER: Hi %s, Amount Due: %s. Please settle ASAP. Thank you!", name, amount)
	if utf8.RuneCountInString(msg) <= MaxSMSLength {
		return msg
	}
	return truncateSMS(fmt.Sprintf("PAYMENT DUE: %s, %s. Please settle ASAP.", name, amount))
}

func composeBulkReminder(name, urgency string, balance decimal.Decimal) string {
	return fmt.Sprintf("PAYMENT REMINDER\nHi %s,\n%s\nAmount: %s\nPlease settle ASAP. Thank you!",
		name, urgency, utils.FormatPeso(balance))
}

// truncateSMS обрезает текст до 157 символов с многоточием
func truncateSMS(msg string) string {
	if utf8.RuneCountInString(msg) <= MaxSMSLength {
		return msg
	}
	runes := []rune(msg)
	return string(runes[:MaxSMSLength-3]) + "..."
}

// daysUntil число суток от today до даты платежа; отрицательное для просрочки
func daysUntil(client model.Client, today time.Time) (int, bool) {
	due, ok := client.Due(today.Location())
	if !ok {
		return 0, false
	}
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24), true
}

func urgencyLabel(client model.Client, today time.Time) string {
	days, ok := daysUntil(client, today)
	switch {
	case !ok:
		return "Payment Due"
	case days < 0:
		return fmt.Sprintf("OVERDUE by %d days", -days)
	case days == 0:
		return "DUE TODAY"
	case days <= 3:
		return fmt.Sprintf("Due in %d day(s)", days)
	default:
		return "Due: " + client.DueDate
	}
}
