package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// Booking is the durable record of a paid reservation. Created exactly once
// per successful checkout and never mutated afterwards.
type Booking struct {
	ID            string        `json:"id"`
	ActorID       string        `json:"actor_id"`
	SpaceID       string        `json:"space_id"`
	SpaceName     string        `json:"space_name"`
	EventDate     time.Time     `json:"event_date"`
	StartTime     string        `json:"start_time"`
	DurationHours int           `json:"duration_hours"`
	GuestCount    int           `json:"guest_count"`
	TotalPrice    int64         `json:"total_price"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
