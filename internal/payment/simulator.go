// Package payment provides the simulated card authorizer used in place of a
// real payment gateway.
package payment

import (
	"context"
	"strings"
	"time"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

// declineSuffix triggers a simulated bank decline, so testers can force the
// failure path with any card ending in these digits.
const declineSuffix = "0000"

// Simulator stands in for a payment network: a fixed delay for the round
// trip, then a deterministic approve/decline decision.
type Simulator struct {
	delay time.Duration
}

func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

func (s *Simulator) Authorize(ctx context.Context, inst domain.PaymentInstrument) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if strings.HasSuffix(inst.CardDigits(), declineSuffix) {
		return domain.ErrCardDeclined
	}

	return nil
}
