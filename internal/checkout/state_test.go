package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

func testSpace() domain.Space {
	return domain.Space{
		ID:         "s1",
		Name:       "Gran Salón Tarapacá",
		Capacity:   250,
		HourlyRate: 20000,
	}
}

func completeDraft() domain.ReservationDraft {
	return domain.ReservationDraft{
		EventDate:     time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:00",
		DurationHours: 5,
		GuestCount:    50,
	}
}

func TestContinueToPayment_Success(t *testing.T) {
	next, err := ContinueToPayment(CollectingDetails{}, completeDraft(), testSpace())

	require.NoError(t, err)
	ap, ok := next.(AwaitingPayment)
	require.True(t, ok)
	assert.Equal(t, int64(100000), ap.Quote.Subtotal)
	assert.Equal(t, int64(10000), ap.Quote.ServiceFee)
	assert.Equal(t, int64(110000), ap.Quote.Total)
	assert.Empty(t, ap.ErrMsg)
}

func TestContinueToPayment_GuardViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ReservationDraft)
	}{
		{"missing date", func(d *domain.ReservationDraft) { d.EventDate = time.Time{} }},
		{"missing start time", func(d *domain.ReservationDraft) { d.StartTime = "" }},
		{"duration off the menu", func(d *domain.ReservationDraft) { d.DurationHours = 9 }},
		{"zero duration", func(d *domain.ReservationDraft) { d.DurationHours = 0 }},
		{"zero guests", func(d *domain.ReservationDraft) { d.GuestCount = 0 }},
		{"guests over capacity", func(d *domain.ReservationDraft) { d.GuestCount = 251 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := completeDraft()
			tt.mutate(&draft)

			next, err := ContinueToPayment(CollectingDetails{}, draft, testSpace())

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.IsType(t, CollectingDetails{}, next)
		})
	}
}

func TestContinueToPayment_WrongPhase(t *testing.T) {
	_, err := ContinueToPayment(AwaitingPayment{}, completeDraft(), testSpace())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = ContinueToPayment(Confirmed{}, completeDraft(), testSpace())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestContinueToPayment_FallbackDailyRate(t *testing.T) {
	space := testSpace()
	space.HourlyRate = 0
	space.DailyRate = 1500000

	next, err := ContinueToPayment(CollectingDetails{}, completeDraft(), space)

	require.NoError(t, err)
	ap := next.(AwaitingPayment)
	assert.Equal(t, int64(150000*5), ap.Quote.Subtotal)
}

func TestBackToDetails(t *testing.T) {
	next, err := BackToDetails(AwaitingPayment{Quote: domain.PriceQuote{Total: 1}})
	require.NoError(t, err)
	assert.IsType(t, CollectingDetails{}, next)

	_, err = BackToDetails(CollectingDetails{})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = BackToDetails(Confirmed{})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRejectPayment_KeepsQuote(t *testing.T) {
	quote := domain.PriceQuote{Subtotal: 100000, ServiceFee: 10000, Total: 110000}

	next, err := RejectPayment(AwaitingPayment{Quote: quote}, "rechazado")

	require.NoError(t, err)
	ap := next.(AwaitingPayment)
	assert.Equal(t, quote, ap.Quote)
	assert.Equal(t, "rechazado", ap.ErrMsg)
}

func TestRejectPayment_WrongPhase(t *testing.T) {
	_, err := RejectPayment(CollectingDetails{}, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestComplete(t *testing.T) {
	summary := domain.BookingSummary{SpaceName: "Gran Salón Tarapacá", TotalPrice: 110000}

	next, err := Complete(AwaitingPayment{}, summary)

	require.NoError(t, err)
	conf := next.(Confirmed)
	assert.Equal(t, summary, conf.Summary)

	_, err = Complete(CollectingDetails{}, summary)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = Complete(Confirmed{}, summary)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPhaseNames(t *testing.T) {
	assert.Equal(t, "collecting_details", CollectingDetails{}.Phase())
	assert.Equal(t, "awaiting_payment", AwaitingPayment{}.Phase())
	assert.Equal(t, "confirmed", Confirmed{}.Phase())
}
