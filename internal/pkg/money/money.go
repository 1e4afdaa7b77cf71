// Package money formats minor-unit amounts for chat text.
package money

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders minor units with thousands grouping, dropping ".00".
// 150000 -> "1,500"; 150050 -> "1,500.50".
func FormatAmount(minor int64) string {
	neg := minor < 0
	if neg {
		minor = -minor
	}
	whole := minor / 100
	frac := minor % 100

	var s string
	if frac == 0 {
		s = printer.Sprintf("%d", whole)
	} else {
		s = printer.Sprintf("%d.%02d", whole, frac)
	}
	if neg {
		return "-" + s
	}
	return s
}

// Format renders an amount followed by its currency code, e.g. "1,500 USD".
func Format(minor int64, currency string) string {
	return FormatAmount(minor) + " " + strings.ToUpper(currency)
}
