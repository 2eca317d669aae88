package dto

import (
	"time"

	"github.com/stpnv0/TimeslotBooker/internal/domain"
)

type TimeslotResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	StartAt     string `json:"start_at"`
	EndAt       string `json:"end_at"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type AvailabilityResponse struct {
	Capacity       int `json:"capacity"`
	ConfirmedCount int `json:"confirmed_count"`
	FreeSpots      int `json:"free_spots"`
}

type TimeslotDetailsResponse struct {
	Timeslot     TimeslotResponse     `json:"timeslot"`
	Availability AvailabilityResponse `json:"availability"`
	MyBookingID  string               `json:"my_booking_id,omitempty"`
	Bookings     []BookingResponse    `json:"bookings,omitempty"`
}

type TimeslotListItemResponse struct {
	Timeslot    TimeslotResponse `json:"timeslot"`
	FreeSpots   int              `json:"free_spots"`
	MyBookingID string           `json:"my_booking_id,omitempty"`
}

type BookingResponse struct {
	ID          string  `json:"id"`
	TimeslotID  string  `json:"timeslot_id"`
	UserID      string  `json:"user_id"`
	Message     string  `json:"message"`
	Status      string  `json:"status"`
	BookedAt    string  `json:"booked_at"`
	CancelledAt *string `json:"cancelled_at,omitempty"`
}

type UserBookingResponse struct {
	Booking  BookingResponse  `json:"booking"`
	Timeslot TimeslotResponse `json:"timeslot"`
}

type CancelResponse struct {
	Status string `json:"status"`
}

type TimeslotCancelResponse struct {
	Status            string `json:"status"`
	CancelledBookings int    `json:"cancelled_bookings"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToTimeslotResponse(t *domain.Timeslot) TimeslotResponse {
	return TimeslotResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Address:     t.Address,
		StartAt:     t.StartAt.Format(time.RFC3339),
		EndAt:       t.EndAt.Format(time.RFC3339),
		Capacity:    t.Capacity,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(a domain.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		Capacity:       a.Capacity,
		ConfirmedCount: a.ConfirmedCount,
		FreeSpots:      a.FreeSpots,
	}
}

func ToTimeslotDetailsResponse(d *domain.TimeslotDetails) TimeslotDetailsResponse {
	var bookings []BookingResponse
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return TimeslotDetailsResponse{
		Timeslot:     ToTimeslotResponse(&d.Timeslot),
		Availability: ToAvailabilityResponse(d.Availability),
		MyBookingID:  d.MyBookingID,
		Bookings:     bookings,
	}
}

func ToTimeslotListItemResponse(i *domain.TimeslotListItem) TimeslotListItemResponse {
	return TimeslotListItemResponse{
		Timeslot:    ToTimeslotResponse(&i.Timeslot),
		FreeSpots:   i.Availability.FreeSpots,
		MyBookingID: i.MyBookingID,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		TimeslotID: b.TimeslotID,
		UserID:     b.UserID,
		Message:    b.Message,
		Status:     string(b.Status),
		BookedAt:   b.BookedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		at := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &at
	}
	return resp
}

func ToUserBookingResponse(ub *domain.UserBooking) UserBookingResponse {
	return UserBookingResponse{
		Booking:  ToBookingResponse(&ub.Booking),
		Timeslot: ToTimeslotResponse(&ub.Timeslot),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
