package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
	"github.com/conectarapak-prog/ConecTaTec/internal/service/ports/mocks"
)

func TestCatalogService_List(t *testing.T) {
	repo := mocks.NewMockSpaceRepo(t)
	svc := NewCatalogService(repo)

	spaces := []*domain.Space{
		{ID: "s1", Name: "Gran Salón Tarapacá", Capacity: 250, HourlyRate: 20000},
		{ID: "s2", Name: "Terraza Vista Mar", Capacity: 80, HourlyRate: 60000},
	}
	repo.EXPECT().List(mock.Anything).Return(spaces, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestCatalogService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockSpaceRepo(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSpaceNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrSpaceNotFound)
}
