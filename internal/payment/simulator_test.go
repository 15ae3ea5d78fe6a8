package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

func TestSimulator_DeclinesSuffix(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		declined   bool
	}{
		{"grouped number with decline suffix", "4111 1111 1111 0000", true},
		{"plain number with decline suffix", "4111111111110000", true},
		{"grouped number without suffix", "4111 1111 1111 1234", false},
		{"plain number without suffix", "4111111111111234", false},
		{"suffix only inside the number", "4000 0000 1111 1234", false},
	}

	sim := NewSimulator(0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sim.Authorize(context.Background(), domain.PaymentInstrument{
				HolderName: "Juan Pérez",
				CardNumber: tt.cardNumber,
				Expiry:     "12/27",
				CVC:        "123",
			})

			if tt.declined {
				assert.ErrorIs(t, err, domain.ErrCardDeclined)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSimulator_Deterministic(t *testing.T) {
	sim := NewSimulator(0)
	inst := domain.PaymentInstrument{CardNumber: "4111 1111 1111 0000"}

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, sim.Authorize(context.Background(), inst), domain.ErrCardDeclined)
	}
}

func TestSimulator_WaitsDelay(t *testing.T) {
	sim := NewSimulator(30 * time.Millisecond)

	start := time.Now()
	err := sim.Authorize(context.Background(), domain.PaymentInstrument{CardNumber: "4111111111111234"})

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSimulator_ContextCancelled(t *testing.T) {
	sim := NewSimulator(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := sim.Authorize(ctx, domain.PaymentInstrument{CardNumber: "4111111111111234"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
