package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/stpnv0/TimeslotBooker/internal/service/ports"
)

// AvailabilityCalculator derives free spots from confirmed bookings. Called
// inside a transaction that holds the timeslot lock, the result cannot go
// stale before commit.
type AvailabilityCalculator struct {
	bookings ports.BookingRepo
}

func NewAvailabilityCalculator(bookings ports.BookingRepo) *AvailabilityCalculator {
	return &AvailabilityCalculator{bookings: bookings}
}

func (c *AvailabilityCalculator) ForTimeslot(ctx context.Context, t *domain.Timeslot) (domain.Availability, error) {
	confirmed, err := c.bookings.CountConfirmed(ctx, t.ID)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("count confirmed: %w", err)
	}

	return domain.NewAvailability(t.Capacity, confirmed), nil
}

// ForTimeslots computes availability for a listing with one count query.
func (c *AvailabilityCalculator) ForTimeslots(ctx context.Context, ts []*domain.Timeslot) (map[string]domain.Availability, error) {
	res := make(map[string]domain.Availability, len(ts))
	if len(ts) == 0 {
		return res, nil
	}

	ids := make([]string, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.ID)
	}

	counts, err := c.bookings.CountConfirmedByTimeslots(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}

	for _, t := range ts {
		res[t.ID] = domain.NewAvailability(t.Capacity, counts[t.ID])
	}

	return res, nil
}
