package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

var AllBookingStatuses = []BookingStatus{BookingStatusConfirmed, BookingStatusCancelled}

// MaxBookingMessageLen bounds the free-text note a user attaches to a booking.
const MaxBookingMessageLen = 1000

type Booking struct {
	ID          string        `json:"id"`
	TimeslotID  string        `json:"timeslot_id"`
	UserID      string        `json:"user_id"`
	Message     string        `json:"message"`
	Status      BookingStatus `json:"status"`
	BookedAt    time.Time     `json:"booked_at"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// UserBooking is a booking shown together with the timeslot it belongs to.
type UserBooking struct {
	Booking  Booking  `json:"booking"`
	Timeslot Timeslot `json:"timeslot"`
}

// CancelOutcome distinguishes a real transition from an idempotent repeat.
// An already cancelled entity is not an error.
type CancelOutcome string

const (
	CancelOutcomeCancelled        CancelOutcome = "cancelled"
	CancelOutcomeAlreadyCancelled CancelOutcome = "already_cancelled"
)

type TimeslotCancellation struct {
	Outcome           CancelOutcome `json:"outcome"`
	CancelledBookings int           `json:"cancelled_bookings"`
}
