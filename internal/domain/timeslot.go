package domain

import (
	"fmt"
	"strings"
	"time"
)

type TimeslotStatus string

const (
	TimeslotStatusOpen      TimeslotStatus = "open"
	TimeslotStatusHidden    TimeslotStatus = "hidden"
	TimeslotStatusCancelled TimeslotStatus = "cancelled"
)

var AllTimeslotStatuses = []TimeslotStatus{
	TimeslotStatusOpen,
	TimeslotStatusHidden,
	TimeslotStatusCancelled,
}

func (s TimeslotStatus) Valid() bool {
	switch s {
	case TimeslotStatusOpen, TimeslotStatusHidden, TimeslotStatusCancelled:
		return true
	}
	return false
}

// CanEditTo reports whether staff may move a timeslot from s to next through
// an edit. Cancellation is not an edit: it goes through CancelTimeslot so the
// confirmed bookings are released in the same transaction.
func (s TimeslotStatus) CanEditTo(next TimeslotStatus) bool {
	if s == TimeslotStatusCancelled {
		return false
	}
	return next == TimeslotStatusOpen || next == TimeslotStatusHidden
}

type Timeslot struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Address     string         `json:"address"`
	StartAt     time.Time      `json:"start_at"`
	EndAt       time.Time      `json:"end_at"`
	Capacity    int            `json:"capacity"`
	Status      TimeslotStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// HasEnded reports whether the timeslot is over at the given instant.
// A timeslot ending exactly at now counts as ended.
func (t *Timeslot) HasEnded(now time.Time) bool {
	return !now.Before(t.EndAt)
}

type TimeslotDetails struct {
	Timeslot     Timeslot     `json:"timeslot"`
	Availability Availability `json:"availability"`
	MyBookingID  string       `json:"my_booking_id,omitempty"`
	// Bookings is filled for staff only.
	Bookings []Booking `json:"bookings,omitempty"`
}

type TimeslotListItem struct {
	Timeslot     Timeslot     `json:"timeslot"`
	Availability Availability `json:"availability"`
	MyBookingID  string       `json:"my_booking_id,omitempty"`
}

type CreateTimeslotInput struct {
	Name        string
	Description string
	Address     string
	StartAt     time.Time
	EndAt       time.Time
	Capacity    int
	Hidden      bool
}

func (in *CreateTimeslotInput) Validate(now time.Time) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := validateBounds(in.StartAt, in.EndAt, in.Capacity); err != nil {
		return err
	}
	if !in.EndAt.After(now) {
		return fmt.Errorf("%w: end_at must be in the future", ErrValidation)
	}
	return nil
}

// UpdateTimeslotInput carries a full replacement of the editable fields.
type UpdateTimeslotInput struct {
	Name        string
	Description string
	Address     string
	StartAt     time.Time
	EndAt       time.Time
	Capacity    int
	Status      TimeslotStatus
}

func (in *UpdateTimeslotInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	return validateBounds(in.StartAt, in.EndAt, in.Capacity)
}

func validateBounds(start, end time.Time, capacity int) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start_at and end_at are required", ErrValidation)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end_at must be after start_at", ErrValidation)
	}
	if capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
	}
	return nil
}
