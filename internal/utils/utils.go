package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// HandleFatalError завершает процесс через logger.Fatal, если err не nil.
// Без логгера вызывает panic.
func HandleFatalError(err error, logger *zap.Logger, msg string) {
	if logger == nil {
		panic("logger is nil")
	}
	if err != nil {
		logger.Fatal(msg, zap.Error(err))
	}
}

// FormatPeso форматирует сумму как PHP1,234.56
func FormatPeso(amount decimal.Decimal) string {
	return "PHP" + FormatAmount(amount)
}

// FormatAmount два знака после точки и запятые между тысячами
func FormatAmount(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
