package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
	"github.com/conectarapak-prog/ConecTaTec/internal/service/ports/mocks"
)

func TestBookingService_ListByActor(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(repo)

	bookings := []*domain.Booking{
		{ID: "b1", ActorID: "a1", SpaceName: "Terraza Vista Mar", TotalPrice: 132000},
	}
	repo.EXPECT().ListByActor(mock.Anything, "a1").Return(bookings, nil)

	result, err := svc.ListByActor(context.Background(), "a1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Terraza Vista Mar", result[0].SpaceName)
}

func TestBookingService_ListByActor_Error(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(repo)

	repo.EXPECT().ListByActor(mock.Anything, "a1").Return(nil, errors.New("db error"))

	_, err := svc.ListByActor(context.Background(), "a1")

	require.Error(t, err)
}
