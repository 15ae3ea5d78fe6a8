package domain

import "errors"

var (
	ErrSpaceNotFound   = errors.New("space not found")
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrCardDeclined      = errors.New("card declined")
	ErrSubmitInFlight    = errors.New("a payment submission is already in progress")
	ErrInvalidTransition = errors.New("operation not allowed in the current checkout step")
	ErrNotAuthenticated  = errors.New("no authenticated actor")
)

var (
	ErrValidation = errors.New("validation error")
)
