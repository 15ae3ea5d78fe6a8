package domain

import (
	"strings"
	"time"
)

// ReservationDraft is the mutable form data of one checkout session. It
// lives only for the session's lifetime and is discarded on exit.
type ReservationDraft struct {
	EventDate     time.Time `json:"event_date"`
	StartTime     string    `json:"start_time"`
	DurationHours int       `json:"duration_hours"`
	GuestCount    int       `json:"guest_count"`
	Notes         string    `json:"notes"`
}

// PriceQuote is the cost breakdown for a draft. Amounts in CLP.
type PriceQuote struct {
	Subtotal   int64 `json:"subtotal"`
	ServiceFee int64 `json:"service_fee"`
	Total      int64 `json:"total"`
}

// PaymentInstrument carries the simulated card data. Ephemeral: kept only
// while a session awaits payment, cleared on success or cancellation.
type PaymentInstrument struct {
	HolderName string
	CardNumber string
	Expiry     string
	CVC        string
}

// CardDigits returns the card number with all whitespace stripped.
func (p PaymentInstrument) CardDigits() string {
	return strings.Join(strings.Fields(p.CardNumber), "")
}

// BookingSummary is what a finished checkout shows before the user leaves.
type BookingSummary struct {
	SpaceName  string    `json:"space_name"`
	EventDate  time.Time `json:"event_date"`
	StartTime  string    `json:"start_time"`
	TotalPrice int64     `json:"total_price"`
}
