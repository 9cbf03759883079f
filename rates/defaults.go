package rates

import "go-currency-converter/domain"

// Base the currency every default rate is expressed against
const Base domain.Currency = "USD"

// DefaultFrom and DefaultTo the pair selected on startup
const (
	DefaultFrom domain.Currency = "USD"
	DefaultTo   domain.Currency = "VND"
)

// DefaultEntries the compiled-in table, 1 USD base
func DefaultEntries() []Entry {
	return []Entry{
		{Label: "United States - Dollar (USD)", Code: "USD", Rate: 1.0},
		{Label: "Vietnam - Dong (VND)", Code: "VND", Rate: 23185.0},
		{Label: "Euro - Euro (EUR)", Code: "EUR", Rate: 0.92},
		{Label: "Japan - Yen (JPY)", Code: "JPY", Rate: 149.50},
		{Label: "United Kingdom - Pound (GBP)", Code: "GBP", Rate: 0.77},
		{Label: "Australia - Dollar (AUD)", Code: "AUD", Rate: 1.50},
		{Label: "Canada - Dollar (CAD)", Code: "CAD", Rate: 1.38},
		{Label: "China - Yuan (CNY)", Code: "CNY", Rate: 7.12},
		{Label: "India - Rupee (INR)", Code: "INR", Rate: 83.95},
		{Label: "South Korea - Won (KRW)", Code: "KRW", Rate: 1380.0},
	}
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	c, err := NewCatalog(DefaultEntries())
	if err != nil {
		// the defaults are constants, so this is a programming error
		panic(err)
	}
	return c
}

// DefaultZeroDecimal currencies displayed without fractional digits
func DefaultZeroDecimal() domain.CurrencySet {
	return domain.NewCurrencySet("VND", "JPY", "KRW")
}
