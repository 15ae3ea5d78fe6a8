package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

type SpaceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSpaceRepo(db *dbpg.DB) *SpaceRepository {
	return &SpaceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SpaceRepository) GetByID(ctx context.Context, id string) (*domain.Space, error) {
	query := `SELECT id, name, type, description, capacity, hourly_rate, daily_rate, image_url, rating, created_at
			  FROM spaces
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get space: %w", err)
	}

	var s domain.Space
	if err = row.Scan(
		&s.ID, &s.Name, &s.Type, &s.Description, &s.Capacity,
		&s.HourlyRate, &s.DailyRate, &s.ImageURL, &s.Rating, &s.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSpaceNotFound
		}
		return nil, fmt.Errorf("scan space: %w", err)
	}

	return &s, nil
}

func (r *SpaceRepository) List(ctx context.Context) ([]*domain.Space, error) {
	query := `SELECT id, name, type, description, capacity, hourly_rate, daily_rate, image_url, rating, created_at
			  FROM spaces
			  ORDER BY rating DESC, name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}
	defer rows.Close()

	var res []*domain.Space
	for rows.Next() {
		var s domain.Space
		if err = rows.Scan(
			&s.ID, &s.Name, &s.Type, &s.Description, &s.Capacity,
			&s.HourlyRate, &s.DailyRate, &s.ImageURL, &s.Rating, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan space: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
