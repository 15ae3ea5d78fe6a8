package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
	"github.com/conectarapak-prog/ConecTaTec/internal/pricing"
)

// Session owns the state of one checkout: the draft, the payment instrument
// and the current State. Exactly one authorization/persistence call may be
// in flight at a time; a second submit is rejected until it resolves.
type Session struct {
	ID        string
	Space     domain.Space
	CreatedAt time.Time

	mu         sync.Mutex
	draft      domain.ReservationDraft
	instrument domain.PaymentInstrument
	state      State
	inFlight   bool
	lastActive time.Time
}

func newSession(space domain.Space) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:         uuid.New().String(),
		Space:      space,
		CreatedAt:  now,
		state:      CollectingDetails{},
		lastActive: now,
	}
}

// Snapshot is an immutable view of a session for callers outside the core.
type Snapshot struct {
	ID    string
	Space domain.Space
	Draft domain.ReservationDraft
	State State

	// Quote is the pinned quote on the payment step, or a display quote
	// derived from the draft while details are still being collected. Nil
	// until the draft carries a priceable duration.
	Quote *domain.PriceQuote
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:    s.ID,
		Space: s.Space,
		Draft: s.draft,
		State: s.state,
	}

	switch st := s.state.(type) {
	case AwaitingPayment:
		q := st.Quote
		snap.Quote = &q
	default:
		if q, err := pricing.Compute(s.Space.ResolvedHourlyRate(), s.draft.DurationHours); err == nil {
			snap.Quote = &q
		}
	}

	return snap
}

// UpdateDraft replaces the draft fields. Only allowed while details are
// being collected; durations off the menu are rejected immediately so the
// form can prompt without waiting for the step transition.
func (s *Session) UpdateDraft(d domain.ReservationDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.(CollectingDetails); !ok {
		return domain.ErrInvalidTransition
	}
	if d.DurationHours != 0 && !pricing.DurationAllowed(d.DurationHours) {
		return domain.ErrValidation
	}

	s.draft = d
	s.touch()
	return nil
}

// Continue applies the CollectingDetails -> AwaitingPayment transition.
func (s *Session) Continue() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := ContinueToPayment(s.state, s.draft, s.Space)
	if err != nil {
		return err
	}
	s.state = next
	s.touch()
	return nil
}

// Back returns to the details step, keeping the draft.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := BackToDetails(s.state)
	if err != nil {
		return err
	}
	s.state = next
	s.touch()
	return nil
}

// BeginSubmit claims the single submit slot and records the instrument.
// Returns copies of the draft and the pinned quote for the caller to act on
// outside the session lock.
func (s *Session) BeginSubmit(inst domain.PaymentInstrument) (domain.ReservationDraft, domain.PriceQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.state.(AwaitingPayment)
	if !ok {
		return domain.ReservationDraft{}, domain.PriceQuote{}, domain.ErrInvalidTransition
	}
	if s.inFlight {
		return domain.ReservationDraft{}, domain.PriceQuote{}, domain.ErrSubmitInFlight
	}

	s.instrument = inst
	s.inFlight = true
	s.touch()
	return s.draft, ap.Quote, nil
}

// FailSubmit releases the submit slot and loops the session back to the
// payment step with the message to display. Instrument and draft stay so the
// user can correct and resubmit.
func (s *Session) FailSubmit(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false
	if next, err := RejectPayment(s.state, msg); err == nil {
		s.state = next
	}
	s.touch()
}

// CompleteSubmit releases the submit slot, moves to Confirmed and discards
// the payment instrument.
func (s *Session) CompleteSubmit(summary domain.BookingSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false
	if next, err := Complete(s.state, summary); err == nil {
		s.state = next
		s.instrument = domain.PaymentInstrument{}
	}
	s.touch()
}

// Confirmed reports whether the session reached the terminal state.
func (s *Session) Confirmed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.state.(Confirmed)
	return ok
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// touch must be called with s.mu held.
func (s *Session) touch() {
	s.lastActive = time.Now().UTC()
}
