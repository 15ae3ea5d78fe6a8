package ports

import (
	"context"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

// PaymentAuthorizer decides whether a payment instrument is approved.
// Returns domain.ErrCardDeclined on a decline; a real gateway can be
// substituted without touching the state machine.
type PaymentAuthorizer interface {
	Authorize(ctx context.Context, inst domain.PaymentInstrument) error
}
