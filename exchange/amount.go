package exchange

import (
	"strconv"
	"strings"

	"go-currency-converter/domain"
)

// ParseAmount parses the raw text of an amount field.
// Text that is not a number converts as 0, it is never reported as an error.
func ParseAmount(text string) domain.Amount {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return domain.Amount(f)
}
