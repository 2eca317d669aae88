package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/stpnv0/TimeslotBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/attribute"
)

type BookingService struct {
	tx           ports.TxManager
	timeslots    ports.TimeslotRepo
	bookings     ports.BookingRepo
	availability *AvailabilityCalculator
	logger       logger.Logger
}

func NewBookingService(
	tx ports.TxManager,
	timeslots ports.TimeslotRepo,
	bookings ports.BookingRepo,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		tx:           tx,
		timeslots:    timeslots,
		bookings:     bookings,
		availability: NewAvailabilityCalculator(bookings),
		logger:       logger,
	}
}

// AttemptBook reserves one spot of the timeslot for the actor. All checks run
// under the timeslot row lock, so concurrent attempts on the same timeslot
// are serialized and capacity cannot be exceeded.
func (s *BookingService) AttemptBook(ctx context.Context, actor domain.Actor, timeslotID, message string) (_ *domain.Booking, err error) {
	ctx, span := startSpan(ctx, "BookingService.AttemptBook",
		attribute.String("timeslot.id", timeslotID),
		attribute.String("user.id", actor.ID),
	)
	defer func() { endSpan(span, err) }()

	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	message = strings.TrimSpace(message)
	if utf8.RuneCountInString(message) > domain.MaxBookingMessageLen {
		return nil, fmt.Errorf("%w: message is longer than %d characters", domain.ErrValidation, domain.MaxBookingMessageLen)
	}

	var booking *domain.Booking
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		ts, err := s.timeslots.GetForUpdate(ctx, timeslotID)
		if err != nil {
			return fmt.Errorf("lock timeslot: %w", err)
		}

		now := time.Now().UTC()
		if ts.Status != domain.TimeslotStatusOpen {
			return domain.ErrTimeslotNotOpen
		}
		if ts.HasEnded(now) {
			return domain.ErrTimeslotExpired
		}

		avail, err := s.availability.ForTimeslot(ctx, ts)
		if err != nil {
			return err
		}
		if avail.IsFull() {
			return domain.ErrTimeslotFull
		}

		booked, err := s.bookings.HasConfirmed(ctx, ts.ID, actor.ID)
		if err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if booked {
			return domain.ErrDuplicateBooking
		}

		b := &domain.Booking{
			ID:         uuid.New().String(),
			TimeslotID: ts.ID,
			UserID:     actor.ID,
			Message:    message,
			Status:     domain.BookingStatusConfirmed,
			BookedAt:   now,
		}
		if err = s.bookings.Create(ctx, b); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		booking = b
		return nil
	})
	if err != nil {
		logDefect(ctx, s.logger, "AttemptBook", err)
		return nil, err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking created",
		logger.String("booking_id", booking.ID),
		logger.String("timeslot_id", booking.TimeslotID),
		logger.String("user_id", booking.UserID),
	)

	return booking, nil
}

// ListUserBookings returns the actor's confirmed and cancelled bookings on
// timeslots that have not ended yet, earliest timeslot first.
func (s *BookingService) ListUserBookings(ctx context.Context, actor domain.Actor) ([]domain.UserBooking, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	bookings, err := s.bookings.List(ctx, domain.BookingFilter{
		UserID:   actor.ID,
		Statuses: domain.AllBookingStatuses,
		Period:   domain.PeriodFuture,
	})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if len(bookings) == 0 {
		return []domain.UserBooking{}, nil
	}

	ids := make([]string, 0, len(bookings))
	seen := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.TimeslotID]; ok {
			continue
		}
		seen[b.TimeslotID] = struct{}{}
		ids = append(ids, b.TimeslotID)
	}

	timeslots, err := s.timeslots.List(ctx, domain.TimeslotFilter{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("list timeslots: %w", err)
	}
	byID := make(map[string]*domain.Timeslot, len(timeslots))
	for _, t := range timeslots {
		byID[t.ID] = t
	}

	res := make([]domain.UserBooking, 0, len(bookings))
	for _, b := range bookings {
		t, ok := byID[b.TimeslotID]
		if !ok {
			continue
		}
		res = append(res, domain.UserBooking{Booking: *b, Timeslot: *t})
	}

	return res, nil
}
