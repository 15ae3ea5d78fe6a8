package domain

import "time"

// Space is a bookable venue from the catalog. Read-only for the checkout
// core; prices are integer CLP.
type Space struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
	HourlyRate  int64     `json:"hourly_rate"`
	DailyRate   int64     `json:"daily_rate"`
	ImageURL    string    `json:"image_url"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResolvedHourlyRate returns the explicit hourly rate, or derives one from
// the daily rate (rounded tenth) when no hourly rate is listed.
func (s Space) ResolvedHourlyRate() int64 {
	if s.HourlyRate > 0 {
		return s.HourlyRate
	}
	return (s.DailyRate + 5) / 10
}
