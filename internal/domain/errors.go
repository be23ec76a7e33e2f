package domain

import "errors"

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrAdminNotFound   = errors.New("admin not found")
	ErrEventNotFound   = errors.New("event not found")
)

var (
	ErrRoomUnavailable       = errors.New("room is not available for the requested dates")
	ErrRoomHasBookings       = errors.New("room has bookings")
	ErrBookingCancelled      = errors.New("booking is cancelled")
	ErrConfirmationCodeTaken = errors.New("confirmation code already issued")
)

var (
	ErrEmailTaken = errors.New("email is already taken")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")
)

var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidDateRange = errors.New("invalid date range")
)
