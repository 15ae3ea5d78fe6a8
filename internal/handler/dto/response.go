package dto

import (
	"time"

	"github.com/conectarapak-prog/ConecTaTec/internal/checkout"
	"github.com/conectarapak-prog/ConecTaTec/internal/domain"
)

const dateLayout = "2006-01-02"

type SpaceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity"`
	HourlyRate  int64   `json:"hourly_rate"`
	DailyRate   int64   `json:"daily_rate"`
	ImageURL    string  `json:"image_url"`
	Rating      float64 `json:"rating"`
}

type QuoteResponse struct {
	Subtotal   int64 `json:"subtotal"`
	ServiceFee int64 `json:"service_fee"`
	Total      int64 `json:"total"`
}

type DraftResponse struct {
	EventDate     string `json:"event_date,omitempty"`
	StartTime     string `json:"start_time,omitempty"`
	DurationHours int    `json:"duration_hours,omitempty"`
	GuestCount    int    `json:"guest_count,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type SummaryResponse struct {
	SpaceName  string `json:"space_name"`
	EventDate  string `json:"event_date"`
	StartTime  string `json:"start_time"`
	TotalPrice int64  `json:"total_price"`
}

type SessionResponse struct {
	ID           string           `json:"id"`
	Phase        string           `json:"phase"`
	Space        SpaceResponse    `json:"space"`
	Draft        DraftResponse    `json:"draft"`
	Quote        *QuoteResponse   `json:"quote,omitempty"`
	PaymentError string           `json:"payment_error,omitempty"`
	Summary      *SummaryResponse `json:"summary,omitempty"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	SpaceID       string `json:"space_id"`
	SpaceName     string `json:"space_name"`
	EventDate     string `json:"event_date"`
	StartTime     string `json:"start_time"`
	DurationHours int    `json:"duration_hours"`
	GuestCount    int    `json:"guest_count"`
	TotalPrice    int64  `json:"total_price"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSpaceResponse(s *domain.Space) SpaceResponse {
	return SpaceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Type:        s.Type,
		Description: s.Description,
		Capacity:    s.Capacity,
		HourlyRate:  s.HourlyRate,
		DailyRate:   s.DailyRate,
		ImageURL:    s.ImageURL,
		Rating:      s.Rating,
	}
}

func ToSessionResponse(snap checkout.Snapshot) SessionResponse {
	resp := SessionResponse{
		ID:    snap.ID,
		Phase: snap.State.Phase(),
		Space: ToSpaceResponse(&snap.Space),
		Draft: toDraftResponse(snap.Draft),
	}

	if snap.Quote != nil {
		resp.Quote = &QuoteResponse{
			Subtotal:   snap.Quote.Subtotal,
			ServiceFee: snap.Quote.ServiceFee,
			Total:      snap.Quote.Total,
		}
	}

	switch st := snap.State.(type) {
	case checkout.AwaitingPayment:
		resp.PaymentError = st.ErrMsg
	case checkout.Confirmed:
		resp.Summary = &SummaryResponse{
			SpaceName:  st.Summary.SpaceName,
			EventDate:  st.Summary.EventDate.Format(dateLayout),
			StartTime:  st.Summary.StartTime,
			TotalPrice: st.Summary.TotalPrice,
		}
	}

	return resp
}

func toDraftResponse(d domain.ReservationDraft) DraftResponse {
	resp := DraftResponse{
		StartTime:     d.StartTime,
		DurationHours: d.DurationHours,
		GuestCount:    d.GuestCount,
		Notes:         d.Notes,
	}
	if !d.EventDate.IsZero() {
		resp.EventDate = d.EventDate.Format(dateLayout)
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		SpaceID:       b.SpaceID,
		SpaceName:     b.SpaceName,
		EventDate:     b.EventDate.Format(dateLayout),
		StartTime:     b.StartTime,
		DurationHours: b.DurationHours,
		GuestCount:    b.GuestCount,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
