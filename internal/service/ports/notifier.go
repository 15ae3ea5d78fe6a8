package ports

import (
	"context"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

type ReceiptNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, actor domain.Actor, booking *domain.Booking)
}
