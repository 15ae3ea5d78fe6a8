package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking record. The insert is intentionally not
// retried: the checkout flow has no idempotency key, so a retry after an
// ambiguous failure could book twice. A failed attempt surfaces to the
// payment step and the user resubmits.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, actor_id, space_id, space_name, event_date, start_time,
			  					    duration_hours, guest_count, total_price, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Master.ExecContext(
		ctx, query,
		b.ID, b.ActorID, b.SpaceID, b.SpaceName, b.EventDate, b.StartTime,
		b.DurationHours, b.GuestCount, b.TotalPrice, b.Status, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			return fmt.Errorf("insert booking (%s): %w", pgErr.Code.Name(), err)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) ListByActor(ctx context.Context, actorID string) ([]*domain.Booking, error) {
	query := `SELECT id, actor_id, space_id, space_name, event_date, start_time,
					 duration_hours, guest_count, total_price, status, created_at
			  FROM bookings
			  WHERE actor_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, actorID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by actor: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.ActorID, &b.SpaceID, &b.SpaceName, &b.EventDate, &b.StartTime,
			&b.DurationHours, &b.GuestCount, &b.TotalPrice, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
