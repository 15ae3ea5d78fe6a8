package domain

// Actor is the authenticated user on whose behalf a booking is created.
// Supplied by the identity provider; never stored by this service.
type Actor struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
