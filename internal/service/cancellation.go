package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/stpnv0/TimeslotBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/attribute"
)

type CancellationService struct {
	tx        ports.TxManager
	timeslots ports.TimeslotRepo
	bookings  ports.BookingRepo
	logger    logger.Logger
}

func NewCancellationService(
	tx ports.TxManager,
	timeslots ports.TimeslotRepo,
	bookings ports.BookingRepo,
	logger logger.Logger,
) *CancellationService {
	return &CancellationService{
		tx:        tx,
		timeslots: timeslots,
		bookings:  bookings,
		logger:    logger,
	}
}

// CancelBooking releases the actor's spot. Owners and staff may cancel;
// cancelling twice reports CancelOutcomeAlreadyCancelled and writes nothing.
func (s *CancellationService) CancelBooking(ctx context.Context, actor domain.Actor, bookingID string) (_ domain.CancelOutcome, err error) {
	ctx, span := startSpan(ctx, "CancellationService.CancelBooking",
		attribute.String("booking.id", bookingID),
		attribute.String("user.id", actor.ID),
	)
	defer func() { endSpan(span, err) }()

	if !actor.Authenticated() {
		return "", domain.ErrUnauthenticated
	}

	var (
		outcome domain.CancelOutcome
		booking *domain.Booking
	)
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		b, err := s.bookings.GetForUpdate(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("lock booking: %w", err)
		}

		if !actor.CanManage(b.UserID) {
			return domain.ErrForbidden
		}

		if !b.IsConfirmed() {
			outcome = domain.CancelOutcomeAlreadyCancelled
			return nil
		}

		if err = s.bookings.MarkCancelled(ctx, b.ID, time.Now().UTC()); err != nil {
			return fmt.Errorf("mark cancelled: %w", err)
		}

		outcome = domain.CancelOutcomeCancelled
		booking = b
		return nil
	})
	if err != nil {
		logDefect(ctx, s.logger, "CancelBooking", err)
		return "", err
	}

	if outcome == domain.CancelOutcomeCancelled {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "booking cancelled",
			logger.String("booking_id", booking.ID),
			logger.String("timeslot_id", booking.TimeslotID),
			logger.String("user_id", booking.UserID),
			logger.String("cancelled_by", actor.ID),
		)
	}

	return outcome, nil
}

// CancelTimeslot cancels the timeslot and every confirmed booking on it in
// one transaction. Bookings are kept, only their status changes.
func (s *CancellationService) CancelTimeslot(ctx context.Context, actor domain.Actor, timeslotID string) (_ domain.TimeslotCancellation, err error) {
	ctx, span := startSpan(ctx, "CancellationService.CancelTimeslot",
		attribute.String("timeslot.id", timeslotID),
		attribute.String("user.id", actor.ID),
	)
	defer func() { endSpan(span, err) }()

	if err = requireStaff(actor); err != nil {
		return domain.TimeslotCancellation{}, err
	}

	var res domain.TimeslotCancellation
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		ts, err := s.timeslots.GetForUpdate(ctx, timeslotID)
		if err != nil {
			return fmt.Errorf("lock timeslot: %w", err)
		}

		if ts.Status == domain.TimeslotStatusCancelled {
			res = domain.TimeslotCancellation{Outcome: domain.CancelOutcomeAlreadyCancelled}
			return nil
		}

		now := time.Now().UTC()
		if err = s.timeslots.UpdateStatus(ctx, ts.ID, domain.TimeslotStatusCancelled, now); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		n, err := s.bookings.CancelConfirmedByTimeslot(ctx, ts.ID, now)
		if err != nil {
			return fmt.Errorf("cancel bookings: %w", err)
		}

		res = domain.TimeslotCancellation{
			Outcome:           domain.CancelOutcomeCancelled,
			CancelledBookings: n,
		}
		return nil
	})
	if err != nil {
		logDefect(ctx, s.logger, "CancelTimeslot", err)
		return domain.TimeslotCancellation{}, err
	}

	if res.Outcome == domain.CancelOutcomeCancelled {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "timeslot cancelled",
			logger.String("timeslot_id", timeslotID),
			logger.Int("cancelled_bookings", res.CancelledBookings),
			logger.String("cancelled_by", actor.ID),
		)
	}

	return res, nil
}
