package exchange

import (
	"go-currency-converter/domain"
)

// Service converts amounts between currencies of a static rate table
type Service interface {
	// Convert computes the amount for the field opposite to side.
	// With side == domain.To the amount is converted back from the target into the source currency.
	Convert(amount domain.Amount, from domain.Currency, to domain.Currency, side domain.Side) domain.Amount

	// ReferenceRate the value of one unit of from, expressed in to
	ReferenceRate(from domain.Currency, to domain.Currency) domain.Rate
}

// service static rate table conversions
type service struct {
	// rates relative to a single base currency. Never mutated.
	rates domain.Rates
}

// NewService constructs a valid Service.
// Rates are expected to be positive; zero or negative rates yield non-finite results.
func NewService(rates domain.Rates) Service {
	return &service{
		rates: rates,
	}
}

// Convert never rounds, rounding is left to display formatting.
func (s *service) Convert(amount domain.Amount, from domain.Currency, to domain.Currency, side domain.Side) domain.Amount {
	fromRate := float64(s.rates.Rate(from))
	toRate := float64(s.rates.Rate(to))

	if side == domain.To {
		return domain.Amount((float64(amount) / toRate) * fromRate)
	}
	return domain.Amount((float64(amount) / fromRate) * toRate)
}

func (s *service) ReferenceRate(from domain.Currency, to domain.Currency) domain.Rate {
	return s.rates.Rate(to) / s.rates.Rate(from)
}
