package exchange

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/domain"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: level.Debug(logger),
	}
}

func (s *loggingService) Convert(amount domain.Amount, from domain.Currency, to domain.Currency, side domain.Side) (converted domain.Amount) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"amount", amount,
			"from", from,
			"to", to,
			"side", side,
			"converted_amount", converted,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Convert(amount, from, to, side)
}

func (s *loggingService) ReferenceRate(from domain.Currency, to domain.Currency) (rate domain.Rate) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "reference_rate",
			"from", from,
			"to", to,
			"rate", rate,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.ReferenceRate(from, to)
}
