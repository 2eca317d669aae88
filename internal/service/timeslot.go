package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/stpnv0/TimeslotBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type TimeslotService struct {
	tx           ports.TxManager
	timeslots    ports.TimeslotRepo
	bookings     ports.BookingRepo
	availability *AvailabilityCalculator
	logger       logger.Logger
}

func NewTimeslotService(
	tx ports.TxManager,
	timeslots ports.TimeslotRepo,
	bookings ports.BookingRepo,
	logger logger.Logger,
) *TimeslotService {
	return &TimeslotService{
		tx:           tx,
		timeslots:    timeslots,
		bookings:     bookings,
		availability: NewAvailabilityCalculator(bookings),
		logger:       logger,
	}
}

func (s *TimeslotService) CreateTimeslot(ctx context.Context, actor domain.Actor, input domain.CreateTimeslotInput) (*domain.Timeslot, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	status := domain.TimeslotStatusOpen
	if input.Hidden {
		status = domain.TimeslotStatusHidden
	}

	ts := &domain.Timeslot{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		StartAt:     input.StartAt.UTC(),
		EndAt:       input.EndAt.UTC(),
		Capacity:    input.Capacity,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.timeslots.Create(ctx, ts); err != nil {
		logDefect(ctx, s.logger, "CreateTimeslot", err)
		return nil, fmt.Errorf("create timeslot: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "timeslot created",
		logger.String("timeslot_id", ts.ID),
		logger.Int("capacity", ts.Capacity),
		logger.String("created_by", actor.ID),
	)

	return ts, nil
}

// UpdateTimeslot replaces the editable fields. It runs under the row lock so
// a capacity decrease is checked against the confirmed count that no
// concurrent booking can change meanwhile.
func (s *TimeslotService) UpdateTimeslot(ctx context.Context, actor domain.Actor, id string, input domain.UpdateTimeslotInput) (*domain.Timeslot, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Timeslot
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		ts, err := s.timeslots.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock timeslot: %w", err)
		}

		if !ts.Status.CanEditTo(input.Status) {
			return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, ts.Status, input.Status)
		}

		if input.Capacity < ts.Capacity {
			confirmed, err := s.bookings.CountConfirmed(ctx, ts.ID)
			if err != nil {
				return fmt.Errorf("count confirmed: %w", err)
			}
			if input.Capacity < confirmed {
				return fmt.Errorf("%w: capacity %d is below %d confirmed bookings",
					domain.ErrValidation, input.Capacity, confirmed)
			}
		}

		ts.Name = input.Name
		ts.Description = input.Description
		ts.Address = input.Address
		ts.StartAt = input.StartAt.UTC()
		ts.EndAt = input.EndAt.UTC()
		ts.Capacity = input.Capacity
		ts.Status = input.Status
		ts.UpdatedAt = time.Now().UTC()

		if err = s.timeslots.Update(ctx, ts); err != nil {
			return fmt.Errorf("update timeslot: %w", err)
		}

		updated = ts
		return nil
	})
	if err != nil {
		logDefect(ctx, s.logger, "UpdateTimeslot", err)
		return nil, err
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "timeslot updated",
		logger.String("timeslot_id", updated.ID),
		logger.String("status", string(updated.Status)),
		logger.String("updated_by", actor.ID),
	)

	return updated, nil
}

// GetTimeslot reports hidden timeslots as missing to non-staff callers.
// Staff also receive every booking of the timeslot.
func (s *TimeslotService) GetTimeslot(ctx context.Context, actor domain.Actor, id string) (*domain.TimeslotDetails, error) {
	ts, err := s.timeslots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsStaff && ts.Status == domain.TimeslotStatusHidden {
		return nil, domain.ErrTimeslotNotFound
	}

	avail, err := s.availability.ForTimeslot(ctx, ts)
	if err != nil {
		return nil, err
	}

	details := &domain.TimeslotDetails{
		Timeslot:     *ts,
		Availability: avail,
	}

	if !actor.Authenticated() {
		return details, nil
	}

	filter := domain.BookingFilter{TimeslotIDs: []string{ts.ID}}
	if !actor.IsStaff {
		filter.UserID = actor.ID
		filter.Statuses = []domain.BookingStatus{domain.BookingStatusConfirmed}
	}

	bookings, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	for _, b := range bookings {
		if b.UserID == actor.ID && b.IsConfirmed() {
			details.MyBookingID = b.ID
		}
		if actor.IsStaff {
			details.Bookings = append(details.Bookings, *b)
		}
	}

	return details, nil
}

// ListFutureTimeslots lists timeslots that have not ended, earliest first.
// Non-staff callers only see open ones.
func (s *TimeslotService) ListFutureTimeslots(ctx context.Context, actor domain.Actor) ([]domain.TimeslotListItem, error) {
	filter := domain.TimeslotFilter{Period: domain.PeriodFuture}
	if !actor.IsStaff {
		filter.Statuses = []domain.TimeslotStatus{domain.TimeslotStatusOpen}
	}

	timeslots, err := s.timeslots.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list timeslots: %w", err)
	}
	if len(timeslots) == 0 {
		return []domain.TimeslotListItem{}, nil
	}

	avail, err := s.availability.ForTimeslots(ctx, timeslots)
	if err != nil {
		return nil, err
	}

	mine := map[string]string{}
	if actor.Authenticated() {
		ids := make([]string, 0, len(timeslots))
		for _, t := range timeslots {
			ids = append(ids, t.ID)
		}

		bookings, err := s.bookings.List(ctx, domain.BookingFilter{
			TimeslotIDs: ids,
			UserID:      actor.ID,
			Statuses:    []domain.BookingStatus{domain.BookingStatusConfirmed},
		})
		if err != nil {
			return nil, fmt.Errorf("list own bookings: %w", err)
		}
		for _, b := range bookings {
			mine[b.TimeslotID] = b.ID
		}
	}

	res := make([]domain.TimeslotListItem, 0, len(timeslots))
	for _, t := range timeslots {
		res = append(res, domain.TimeslotListItem{
			Timeslot:     *t,
			Availability: avail[t.ID],
			MyBookingID:  mine[t.ID],
		})
	}

	return res, nil
}
