package ports

import (
	"context"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	ListByActor(ctx context.Context, actorID string) ([]*domain.Booking, error)
}
