package domain

import "fmt"

// Currency a currency code, e.g. "USD"
type Currency string

// Amount a monetary amount. Display rounding happens in package format, never here.
type Amount float64

// Rate an exchange rate relative to the base currency
type Rate float64

// Rates maps currency codes to their rate against a single base currency.
// The base currency has rate 1.0.
type Rates map[Currency]Rate

// Rate returns the stored rate for currency, or 1.0 when the currency is unknown.
func (r Rates) Rate(currency Currency) Rate {
	rate, ok := r[currency]
	if !ok {
		return 1.0
	}
	return rate
}

// Side identifies one of the two linked amount fields.
type Side int

const (
	// None no field has been focused yet
	None Side = iota
	// From the nominal source field
	From
	// To the nominal target field
	To
)

// Other returns the opposite field. None has no opposite.
func (s Side) Other() Side {
	switch s {
	case From:
		return To
	case To:
		return From
	}
	return None
}

func (s Side) String() string {
	switch s {
	case From:
		return "from"
	case To:
		return "to"
	}
	return ""
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// ParseSide parses "from", "to" or "" (None).
func ParseSide(s string) (Side, error) {
	switch s {
	case "from":
		return From, nil
	case "to":
		return To, nil
	case "":
		return None, nil
	}
	return None, fmt.Errorf("unknown side: %q", s)
}

// CurrencySet an immutable set of currency codes
type CurrencySet struct {
	members map[Currency]struct{}
}

// NewCurrencySet builds a set from the given codes.
func NewCurrencySet(codes ...Currency) CurrencySet {
	members := make(map[Currency]struct{}, len(codes))
	for _, c := range codes {
		members[c] = struct{}{}
	}
	return CurrencySet{members: members}
}

// Contains reports whether currency is in the set.
func (s CurrencySet) Contains(currency Currency) bool {
	_, ok := s.members[currency]
	return ok
}

// Len number of currencies in the set
func (s CurrencySet) Len() int {
	return len(s.members)
}
