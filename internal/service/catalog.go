package service

import (
	"context"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
	"github.com/conectarapak-prog/ConecTaTec/internal/service/ports"
)

type CatalogService struct {
	repo ports.SpaceRepo
}

func NewCatalogService(repo ports.SpaceRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Space, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Space, error) {
	return s.repo.List(ctx)
}
