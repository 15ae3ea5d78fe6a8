package service

import (
	"context"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
	"github.com/conectarapak-prog/ConecTaTec/internal/service/ports"
)

type BookingService struct {
	repo ports.BookingRepo
}

func NewBookingService(repo ports.BookingRepo) *BookingService {
	return &BookingService{repo: repo}
}

func (s *BookingService) ListByActor(ctx context.Context, actorID string) ([]*domain.Booking, error) {
	return s.repo.ListByActor(ctx, actorID)
}
