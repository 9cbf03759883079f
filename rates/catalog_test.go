package rates

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-currency-converter/domain"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label string
		want  domain.Currency
	}{
		{"United States - Dollar (USD)", "USD"},
		{"South Korea - Won (KRW)", "KRW"},
		{"Weird (old) - Name (ABC)", "ABC"},
		{"(XYZ", "XYZ"},
		{"EUR)", "EUR"},
		{"GBP", "GBP"},
		{"  JPY  ", "JPY"},
		{"Nothing ()", ""},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLabel(tt.label))
		})
	}
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Labels(), 10)
	assert.Equal(t, "United States - Dollar (USD)", c.Labels()[0])
	assert.Equal(t, domain.Currency("VND"), c.Codes()[1])

	r := c.Rates()
	assert.Equal(t, domain.Rate(1.0), r.Rate(Base))
	assert.Equal(t, domain.Rate(23185.0), r.Rate("VND"))
	assert.Equal(t, domain.Rate(0.92), r.Rate("EUR"))
	assert.Equal(t, domain.Rate(1380.0), r.Rate("KRW"))

	for _, label := range c.Labels() {
		_, ok := c.Lookup(ParseLabel(label))
		assert.True(t, ok, label)
	}

	zero := DefaultZeroDecimal()
	assert.True(t, zero.Contains("VND"))
	assert.True(t, zero.Contains("JPY"))
	assert.True(t, zero.Contains("KRW"))
	assert.False(t, zero.Contains("USD"))
}

func TestCatalog_RatesIsACopy(t *testing.T) {
	c := Default()
	r := c.Rates()
	r["VND"] = 1

	assert.Equal(t, domain.Rate(23185.0), c.Rates().Rate("VND"))
}

func TestNewCatalog_CodeFromLabel(t *testing.T) {
	c, err := NewCatalog([]Entry{{Label: "Switzerland - Franc (CHF)", Rate: 0.9}})
	require.Nil(t, err)

	e, ok := c.Lookup("CHF")
	assert.True(t, ok)
	assert.Equal(t, domain.Rate(0.9), e.Rate)
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{"zero rate", []Entry{{Code: "ABC", Rate: 0}}, ErrInvalidRate},
		{"negative rate", []Entry{{Code: "ABC", Rate: -1}}, ErrInvalidRate},
		{"nan rate", []Entry{{Code: "ABC", Rate: domain.Rate(math.NaN())}}, ErrInvalidRate},
		{"inf rate", []Entry{{Code: "ABC", Rate: domain.Rate(math.Inf(1))}}, ErrInvalidRate},
		{"duplicate", []Entry{{Code: "ABC", Rate: 1}, {Label: "Dup (ABC)", Rate: 2}}, ErrDuplicate},
		{"empty code", []Entry{{Label: "Nothing ()", Rate: 1}}, ErrEmptyCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.entries)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
