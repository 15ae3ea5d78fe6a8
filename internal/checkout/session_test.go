package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

func testInstrument() domain.PaymentInstrument {
	return domain.PaymentInstrument{
		HolderName: "Juan Pérez",
		CardNumber: "4111 1111 1111 1234",
		Expiry:     "12/27",
		CVC:        "123",
	}
}

func TestSession_StartsEmpty(t *testing.T) {
	m := NewManager(time.Hour)
	sess := m.Start(testSpace())

	snap := sess.Snapshot()
	assert.NotEmpty(t, snap.ID)
	assert.IsType(t, CollectingDetails{}, snap.State)
	assert.Zero(t, snap.Draft)
	assert.Nil(t, snap.Quote)
}

func TestSession_UpdateDraft(t *testing.T) {
	m := NewManager(time.Hour)
	sess := m.Start(testSpace())

	require.NoError(t, sess.UpdateDraft(completeDraft()))

	snap := sess.Snapshot()
	assert.Equal(t, completeDraft(), snap.Draft)
	require.NotNil(t, snap.Quote)
	assert.Equal(t, int64(110000), snap.Quote.Total)
}

func TestSession_UpdateDraft_RejectsOffMenuDuration(t *testing.T) {
	m := NewManager(time.Hour)
	sess := m.Start(testSpace())

	draft := completeDraft()
	draft.DurationHours = 9

	assert.ErrorIs(t, sess.UpdateDraft(draft), domain.ErrValidation)
}

func TestSession_UpdateDraft_OnlyWhileCollecting(t *testing.T) {
	m := NewManager(time.Hour)
	sess := m.Start(testSpace())

	require.NoError(t, sess.UpdateDraft(completeDraft()))
	require.NoError(t, sess.Continue())

	assert.ErrorIs(t, sess.UpdateDraft(completeDraft()), domain.ErrInvalidTransition)
}

func TestSession_BackKeepsDraft(t *testing.T) {
	m := NewManager(time.Hour)
	sess := m.Start(testSpace())

	require.NoError(t, sess.UpdateDraft(completeDraft()))
	require.NoError(t, sess.Continue())
	require.NoError(t, sess.Back())

	snap := sess.Snapshot()
	assert.IsType(t, CollectingDetails{}, snap.State)
	assert.Equal(t, completeDraft(), snap.Draft)
}

func TestSession_SingleSubmitInFlight(t *testing.T) {
	m := NewManager(time.Hour)
	sess := m.Start(testSpace())

	require.NoError(t, sess.UpdateDraft(completeDraft()))
	require.NoError(t, sess.Continue())

	draft, quote, err := sess.BeginSubmit(testInstrument())
	require.NoError(t, err)
	assert.Equal(t, completeDraft(), draft)
	assert.Equal(t, int64(110000), quote.Total)

	_, _, err = sess.BeginSubmit(testInstrument())
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight)

	sess.FailSubmit("rechazado")

	// slot released after the failure, resubmission allowed
	_, _, err = sess.BeginSubmit(testInstrument())
	assert.NoError(t, err)
}

func TestSession_SubmitRequiresPaymentStep(t *testing.T) {
	m := NewManager(time.Hour)
	sess := m.Start(testSpace())

	_, _, err := sess.BeginSubmit(testInstrument())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSession_FailSubmitKeepsQuoteAndMessage(t *testing.T) {
	m := NewManager(time.Hour)
	sess := m.Start(testSpace())

	require.NoError(t, sess.UpdateDraft(completeDraft()))
	require.NoError(t, sess.Continue())
	_, _, err := sess.BeginSubmit(testInstrument())
	require.NoError(t, err)

	sess.FailSubmit("Pago rechazado por el banco emisor.")

	snap := sess.Snapshot()
	ap, ok := snap.State.(AwaitingPayment)
	require.True(t, ok)
	assert.Equal(t, "Pago rechazado por el banco emisor.", ap.ErrMsg)
	assert.Equal(t, int64(110000), ap.Quote.Total)
	assert.Equal(t, completeDraft(), snap.Draft)
}

func TestSession_CompleteSubmit(t *testing.T) {
	m := NewManager(time.Hour)
	sess := m.Start(testSpace())

	require.NoError(t, sess.UpdateDraft(completeDraft()))
	require.NoError(t, sess.Continue())
	_, quote, err := sess.BeginSubmit(testInstrument())
	require.NoError(t, err)

	sess.CompleteSubmit(domain.BookingSummary{
		SpaceName:  "Gran Salón Tarapacá",
		TotalPrice: quote.Total,
	})

	assert.True(t, sess.Confirmed())
	conf := sess.Snapshot().State.(Confirmed)
	assert.Equal(t, int64(110000), conf.Summary.TotalPrice)
}

func TestManager_NoLeakageAcrossSessions(t *testing.T) {
	m := NewManager(time.Hour)
	space := testSpace()

	first := m.Start(space)
	require.NoError(t, first.UpdateDraft(completeDraft()))
	require.NoError(t, first.Continue())
	_, _, err := first.BeginSubmit(testInstrument())
	require.NoError(t, err)
	first.CompleteSubmit(domain.BookingSummary{TotalPrice: 110000})
	m.Remove(first.ID)

	_, err = m.Get(first.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	second := m.Start(space)
	snap := second.Snapshot()
	assert.NotEqual(t, first.ID, second.ID)
	assert.IsType(t, CollectingDetails{}, snap.State)
	assert.Zero(t, snap.Draft)
}

func TestManager_SweepExpired(t *testing.T) {
	m := NewManager(10 * time.Millisecond)

	stale := m.Start(testSpace())
	time.Sleep(25 * time.Millisecond)
	fresh := m.Start(testSpace())

	expired := m.SweepExpired(context.Background())

	assert.Equal(t, []string{stale.ID}, expired)
	assert.Equal(t, 1, m.Len())

	_, err := m.Get(stale.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = m.Get(fresh.ID)
	assert.NoError(t, err)
}
