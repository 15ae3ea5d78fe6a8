// Package checkout implements the reservation checkout state machine:
// CollectingDetails -> AwaitingPayment -> Confirmed, with a retryable error
// loop on the payment step. States are plain values transformed only by the
// pure transition functions below, so the machine is testable without any
// transport or storage attached.
package checkout

import (
	"fmt"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
	"github.com/conectarapak-prog/ConecTaTec/internal/pricing"
)

// State is the tagged union of checkout phases.
type State interface {
	isState()
	Phase() string
}

// CollectingDetails is the initial step: the draft is being filled in.
type CollectingDetails struct{}

// AwaitingPayment holds the quote pinned at the step-1 transition and, after
// a failed submit, the message to redisplay on the payment form.
type AwaitingPayment struct {
	Quote  domain.PriceQuote
	ErrMsg string
}

// Confirmed is terminal. It carries the summary shown before the user exits.
type Confirmed struct {
	Summary domain.BookingSummary
}

func (CollectingDetails) isState() {}
func (AwaitingPayment) isState()   {}
func (Confirmed) isState()         {}

func (CollectingDetails) Phase() string { return "collecting_details" }
func (AwaitingPayment) Phase() string   { return "awaiting_payment" }
func (Confirmed) Phase() string         { return "confirmed" }

// ContinueToPayment moves CollectingDetails to AwaitingPayment. The guard
// requires a complete draft within the space's limits; a violation keeps the
// current state and returns a validation error for the caller to display.
func ContinueToPayment(st State, draft domain.ReservationDraft, space domain.Space) (State, error) {
	if _, ok := st.(CollectingDetails); !ok {
		return st, domain.ErrInvalidTransition
	}
	if err := validateDraft(draft, space); err != nil {
		return st, err
	}

	quote, err := pricing.Compute(space.ResolvedHourlyRate(), draft.DurationHours)
	if err != nil {
		// The guard already admitted the draft, so this is an upstream
		// invariant break (bad catalog data), not a user error.
		return st, fmt.Errorf("compute quote: %w", err)
	}

	return AwaitingPayment{Quote: quote}, nil
}

// BackToDetails returns from the payment step without clearing the draft.
func BackToDetails(st State) (State, error) {
	if _, ok := st.(AwaitingPayment); !ok {
		return st, domain.ErrInvalidTransition
	}
	return CollectingDetails{}, nil
}

// RejectPayment keeps the session on the payment step with an error message,
// preserving the pinned quote. Used for both authorization declines and
// persistence failures; the user may resubmit.
func RejectPayment(st State, msg string) (State, error) {
	ap, ok := st.(AwaitingPayment)
	if !ok {
		return st, domain.ErrInvalidTransition
	}
	return AwaitingPayment{Quote: ap.Quote, ErrMsg: msg}, nil
}

// Complete moves AwaitingPayment to the terminal Confirmed state.
func Complete(st State, summary domain.BookingSummary) (State, error) {
	if _, ok := st.(AwaitingPayment); !ok {
		return st, domain.ErrInvalidTransition
	}
	return Confirmed{Summary: summary}, nil
}

func validateDraft(d domain.ReservationDraft, space domain.Space) error {
	if d.EventDate.IsZero() {
		return fmt.Errorf("%w: event date is required", domain.ErrValidation)
	}
	if d.StartTime == "" {
		return fmt.Errorf("%w: start time is required", domain.ErrValidation)
	}
	if !pricing.DurationAllowed(d.DurationHours) {
		return fmt.Errorf("%w: duration of %d hours is not offered", domain.ErrValidation, d.DurationHours)
	}
	if d.GuestCount < 1 {
		return fmt.Errorf("%w: at least one guest is required", domain.ErrValidation)
	}
	if d.GuestCount > space.Capacity {
		return fmt.Errorf("%w: guest count %d exceeds the capacity of %d", domain.ErrValidation, d.GuestCount, space.Capacity)
	}
	return nil
}
