package pricing

import (
	"errors"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

// AllowedDurations is the fixed menu of bookable durations in hours.
var AllowedDurations = []int{2, 3, 4, 5, 6, 7, 8, 10, 12}

// Service fee charged on top of the subtotal, in percent.
const serviceFeePercent = 10

var (
	ErrNonPositiveRate     = errors.New("pricing: hourly rate must be positive")
	ErrNonPositiveDuration = errors.New("pricing: duration must be positive")
)

// DurationAllowed reports whether the duration is on the menu.
func DurationAllowed(hours int) bool {
	for _, h := range AllowedDurations {
		if h == hours {
			return true
		}
	}
	return false
}

// Compute builds the cost breakdown for a resolved hourly rate and a
// duration. The service fee rounds half-up to the nearest peso. Both inputs
// must be positive; a violation is a caller bug, not a user error.
func Compute(hourlyRate int64, durationHours int) (domain.PriceQuote, error) {
	if hourlyRate <= 0 {
		return domain.PriceQuote{}, ErrNonPositiveRate
	}
	if durationHours <= 0 {
		return domain.PriceQuote{}, ErrNonPositiveDuration
	}

	subtotal := hourlyRate * int64(durationHours)
	fee := (subtotal*serviceFeePercent + 50) / 100

	return domain.PriceQuote{
		Subtotal:   subtotal,
		ServiceFee: fee,
		Total:      subtotal + fee,
	}, nil
}
