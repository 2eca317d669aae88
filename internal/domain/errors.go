package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrTimeslotNotFound = fmt.Errorf("timeslot %w", ErrNotFound)
	ErrBookingNotFound  = fmt.Errorf("booking %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
)

// Booking rejections.
var (
	ErrTimeslotNotOpen  = errors.New("timeslot is not open for booking")
	ErrTimeslotExpired  = errors.New("timeslot is in the past")
	ErrTimeslotFull     = errors.New("timeslot is fully booked")
	ErrDuplicateBooking = errors.New("user already has a booking for this timeslot")
)

var (
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrInvalidTransition = errors.New("invalid status transition")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrConstraintViolation means the database rejected a write that the
// transaction logic should have prevented. It always indicates a defect.
var ErrConstraintViolation = errors.New("constraint violation")

type ConstraintViolationError struct {
	Constraint string
	Err        error
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation: %s", e.Constraint)
}

func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}
