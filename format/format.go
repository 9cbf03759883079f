// Package format renders amounts and rates for display.
// Formatting is lossy and for display only.
package format

import (
	"fmt"
	"math"

	"go-currency-converter/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter groups integer digits in runs of three and applies a per-currency fraction-digit policy.
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	// zeroDecimal currencies rendered without fractional digits
	zeroDecimal domain.CurrencySet

	// tag locale for grouping and decimal separators
	tag language.Tag
}

// New constructs a Formatter using English grouping ("1,234.50").
func New(zeroDecimal domain.CurrencySet) *Formatter {
	return NewWithLocale(language.English, zeroDecimal)
}

// NewWithLocale constructs a Formatter for an arbitrary locale.
func NewWithLocale(tag language.Tag, zeroDecimal domain.CurrencySet) *Formatter {
	return &Formatter{
		zeroDecimal: zeroDecimal,
		tag:         tag,
	}
}

// FractionDigits number of fractional digits displayed for currency
func (f *Formatter) FractionDigits(currency domain.Currency) int {
	if f.zeroDecimal.Contains(currency) {
		return 0
	}
	return 2
}

// Format renders value with the fraction-digit policy of currency. No currency symbol is added.
func (f *Formatter) Format(value float64, currency domain.Currency) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "∞"
	case math.IsInf(value, -1):
		return "-∞"
	}

	digits := f.FractionDigits(currency)
	// message.Printer keeps per-call state, so one is built per call
	p := message.NewPrinter(f.tag)
	return p.Sprintf("%v", number.Decimal(value,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
}

// RateLabel renders a reference rate as "1 USD = 23,185 VND".
func (f *Formatter) RateLabel(from domain.Currency, to domain.Currency, rate domain.Rate) string {
	return fmt.Sprintf("1 %v = %v %v", from, f.Format(float64(rate), to), to)
}
