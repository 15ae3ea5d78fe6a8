package ports

import (
	"context"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

type SpaceRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Space, error)
	List(ctx context.Context) ([]*domain.Space, error)
}
