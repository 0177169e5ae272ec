// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders monetary amounts with locale-aware currency formatting.
// This is presentation only; stored amounts stay plain numbers.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter builds a formatter for a BCP 47 locale and ISO 4217 currency
// code. Unparseable values fall back to English / USD.
func NewFormatter(locale, code string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	return Formatter{printer: message.NewPrinter(tag), unit: unit}
}

// Currency formats an amount with the configured currency symbol.
func (f Formatter) Currency(v float64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(v)))
}

// FormatDays renders a days-until-due count. Zero means due today.
func FormatDays(n int) string {
	if n == 0 {
		return "today!"
	}
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// Utilization returns used/limit clamped to 0-1, zero for a zero limit.
func Utilization(used, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	pct := used / limit
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
