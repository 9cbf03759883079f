package rates

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go-currency-converter/domain"
)

var (
	// ErrInvalidRate a rate that is zero, negative or not finite
	ErrInvalidRate = errors.New("invalid rate")
	// ErrDuplicate a currency code listed twice
	ErrDuplicate = errors.New("duplicate currency")
	// ErrEmptyCode a label without a currency code
	ErrEmptyCode = errors.New("empty currency code")
)

// Entry one selectable currency
type Entry struct {
	// Label display label of the form "Country - Name (CODE)"
	Label string
	Code  domain.Currency
	Rate  domain.Rate
}

// Catalog an ordered, immutable list of currencies and their rates.
type Catalog struct {
	entries []Entry
	rates   domain.Rates
}

// NewCatalog constructs a valid Catalog. Entries with an empty Code take it from their Label.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		rates:   make(domain.Rates, len(entries)),
	}
	for _, e := range entries {
		if e.Code == "" {
			e.Code = ParseLabel(e.Label)
		}
		if e.Code == "" {
			return nil, fmt.Errorf("currency %q: %w", e.Label, ErrEmptyCode)
		}
		if _, ok := c.rates[e.Code]; ok {
			return nil, fmt.Errorf("currency %v: %w", e.Code, ErrDuplicate)
		}
		r := float64(e.Rate)
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("currency %v rate %v: %w", e.Code, e.Rate, ErrInvalidRate)
		}
		c.entries = append(c.entries, e)
		c.rates[e.Code] = e.Rate
	}
	return c, nil
}

// Entries returns a copy of the catalog entries in display order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Labels display labels in order
func (c *Catalog) Labels() []string {
	labels := make([]string, len(c.entries))
	for i, e := range c.entries {
		labels[i] = e.Label
	}
	return labels
}

// Codes currency codes in order
func (c *Catalog) Codes() []domain.Currency {
	codes := make([]domain.Currency, len(c.entries))
	for i, e := range c.entries {
		codes[i] = e.Code
	}
	return codes
}

// Rates returns a copy of the rate table
func (c *Catalog) Rates() domain.Rates {
	out := make(domain.Rates, len(c.rates))
	for k, v := range c.rates {
		out[k] = v
	}
	return out
}

// Lookup finds the entry for a currency code
func (c *Catalog) Lookup(code domain.Currency) (Entry, bool) {
	for _, e := range c.entries {
		if e.Code == code {
			return e, true
		}
	}
	return Entry{}, false
}

// ParseLabel extracts the currency code from a label like "Vietnam - Dong (VND)".
// It takes the text after the last "(" up to the next ")". Missing delimiters are
// tolerated: the corresponding cut is skipped.
func ParseLabel(label string) domain.Currency {
	s := label
	if i := strings.LastIndex(s, "("); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.Index(s, ")"); i >= 0 {
		s = s[:i]
	}
	return domain.Currency(strings.TrimSpace(s))
}
