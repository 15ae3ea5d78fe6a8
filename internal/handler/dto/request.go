package dto

type StartCheckoutRequest struct {
	SpaceID string `json:"space_id" binding:"required,uuid"`
}

type UpdateDetailsRequest struct {
	EventDate     string `json:"event_date"`
	StartTime     string `json:"start_time"`
	DurationHours int    `json:"duration_hours"`
	GuestCount    int    `json:"guest_count"`
	Notes         string `json:"notes"`
}

type PayRequest struct {
	CardName   string `json:"card_name" binding:"required"`
	CardNumber string `json:"card_number" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
	CVC        string `json:"cvc" binding:"required"`
}
