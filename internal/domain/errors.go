package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrPaymentNotFound  = errors.New("payment not found")
)

var (
	ErrDatesUnavailable    = errors.New("property already booked for selected dates")
	ErrPropertyUnavailable = errors.New("property is not available")
	ErrBookingNotPending   = errors.New("only pending bookings can be approved or rejected")
	ErrBookingNotApproved  = errors.New("payment can only be made for approved bookings")
	ErrPaymentExists       = errors.New("payment already recorded for this booking")
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
)

var (
	ErrValidation = errors.New("validation error")
)
