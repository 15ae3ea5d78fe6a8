package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/conectarapak-prog/ConecTaTec/internal/checkout"
	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
	"github.com/conectarapak-prog/ConecTaTec/internal/service/ports"
)

// User-facing payment errors, redisplayed inline on the payment step. The
// decline and the persistence failure are deliberately distinct texts.
const (
	msgCardDeclined  = "Pago rechazado por el banco emisor."
	msgBookingFailed = "Hubo un error al procesar el pago. Por favor intenta nuevamente."
)

// CheckoutService drives checkout sessions through the state machine and
// owns the only side effects of the flow: the authorization call and the
// booking insert.
type CheckoutService struct {
	sessions   *checkout.Manager
	spaceRepo  ports.SpaceRepo
	bookings   ports.BookingRepo
	authorizer ports.PaymentAuthorizer
	notifier   ports.ReceiptNotifier
	logger     logger.Logger
}

func NewCheckoutService(
	sessions *checkout.Manager,
	spaceRepo ports.SpaceRepo,
	bookings ports.BookingRepo,
	authorizer ports.PaymentAuthorizer,
	notifier ports.ReceiptNotifier,
	logger logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		sessions:   sessions,
		spaceRepo:  spaceRepo,
		bookings:   bookings,
		authorizer: authorizer,
		notifier:   notifier,
		logger:     logger,
	}
}

// Start opens a new checkout session for a space.
func (s *CheckoutService) Start(ctx context.Context, spaceID string) (checkout.Snapshot, error) {
	space, err := s.spaceRepo.GetByID(ctx, spaceID)
	if err != nil {
		return checkout.Snapshot{}, fmt.Errorf("get space: %w", err)
	}

	sess := s.sessions.Start(*space)

	s.logger.Info("checkout session started",
		logger.String("session_id", sess.ID),
		logger.String("space_id", space.ID),
	)

	return sess.Snapshot(), nil
}

func (s *CheckoutService) Get(ctx context.Context, id string) (checkout.Snapshot, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// UpdateDetails replaces the session draft while details are collected.
func (s *CheckoutService) UpdateDetails(ctx context.Context, id string, draft domain.ReservationDraft) (checkout.Snapshot, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	if err := sess.UpdateDraft(draft); err != nil {
		return checkout.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// ContinueToPayment advances to the payment step when the guard admits the
// draft, pinning the quote that will be charged.
func (s *CheckoutService) ContinueToPayment(ctx context.Context, id string) (checkout.Snapshot, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	if err := sess.Continue(); err != nil {
		return checkout.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// BackToDetails returns to the details step, keeping the draft intact.
func (s *CheckoutService) BackToDetails(ctx context.Context, id string) (checkout.Snapshot, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	if err := sess.Back(); err != nil {
		return checkout.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// SubmitPayment runs the payment leg: authorization first, then the booking
// insert. Declines and insert failures loop the session back to the payment
// step with an inline message; both are retryable. There is no compensating
// action when the insert fails after a simulated approval — the approval is
// not persisted anywhere, so nothing needs undoing.
func (s *CheckoutService) SubmitPayment(ctx context.Context, id string, actor *domain.Actor, inst domain.PaymentInstrument) (checkout.Snapshot, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return checkout.Snapshot{}, err
	}

	draft, quote, err := sess.BeginSubmit(inst)
	if err != nil {
		return checkout.Snapshot{}, err
	}

	// Structural precondition: the caller should have required a login
	// before the payment step. Rejected before any network call.
	if actor == nil {
		s.logger.Warn("payment submitted without an authenticated actor",
			logger.String("session_id", id),
		)
		sess.FailSubmit(msgBookingFailed)
		return sess.Snapshot(), nil
	}

	if err := s.authorizer.Authorize(ctx, inst); err != nil {
		if errors.Is(err, domain.ErrCardDeclined) {
			s.logger.Info("payment declined",
				logger.String("session_id", id),
				logger.String("actor_id", actor.ID),
			)
			sess.FailSubmit(msgCardDeclined)
			return sess.Snapshot(), nil
		}

		s.logger.Error("authorization aborted",
			logger.String("session_id", id),
			logger.String("error", err.Error()),
		)
		sess.FailSubmit(msgBookingFailed)
		return sess.Snapshot(), nil
	}

	booking := &domain.Booking{
		ID:            uuid.New().String(),
		ActorID:       actor.ID,
		SpaceID:       sess.Space.ID,
		SpaceName:     sess.Space.Name,
		EventDate:     draft.EventDate,
		StartTime:     draft.StartTime,
		DurationHours: draft.DurationHours,
		GuestCount:    draft.GuestCount,
		TotalPrice:    quote.Total,
		Status:        domain.BookingStatusConfirmed,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.logger.Error("create booking failed",
			logger.String("session_id", id),
			logger.String("space_id", sess.Space.ID),
			logger.String("error", err.Error()),
		)
		sess.FailSubmit(msgBookingFailed)
		return sess.Snapshot(), nil
	}

	sess.CompleteSubmit(domain.BookingSummary{
		SpaceName:  sess.Space.Name,
		EventDate:  draft.EventDate,
		StartTime:  draft.StartTime,
		TotalPrice: quote.Total,
	})

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("session_id", id),
		logger.String("actor_id", actor.ID),
		logger.Int64("total_price", booking.TotalPrice),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), *actor, booking)

	return sess.Snapshot(), nil
}

// Finish is the explicit "done" exit from the Confirmed state. It discards
// the whole session so nothing leaks into a later checkout.
func (s *CheckoutService) Finish(ctx context.Context, id string) error {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return err
	}
	if !sess.Confirmed() {
		return domain.ErrInvalidTransition
	}

	s.sessions.Remove(id)
	return nil
}

// Cancel abandons a checkout from any non-terminal state. An in-flight
// authorization or insert is left to complete or fail unobserved.
func (s *CheckoutService) Cancel(ctx context.Context, id string) error {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return err
	}
	if sess.Confirmed() {
		return domain.ErrInvalidTransition
	}

	s.sessions.Remove(id)

	s.logger.Info("checkout session cancelled",
		logger.String("session_id", id),
	)
	return nil
}
