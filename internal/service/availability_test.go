package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/stpnv0/TimeslotBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityCalculator_ForTimeslot(t *testing.T) {
	bookings := mocks.NewMockBookingRepo(t)
	calc := NewAvailabilityCalculator(bookings)

	bookings.EXPECT().CountConfirmed(mock.Anything, "t1").Return(3, nil)

	a, err := calc.ForTimeslot(context.Background(), &domain.Timeslot{ID: "t1", Capacity: 5})

	require.NoError(t, err)
	assert.Equal(t, domain.Availability{Capacity: 5, ConfirmedCount: 3, FreeSpots: 2}, a)
}

func TestAvailabilityCalculator_ForTimeslot_NeverNegative(t *testing.T) {
	bookings := mocks.NewMockBookingRepo(t)
	calc := NewAvailabilityCalculator(bookings)

	bookings.EXPECT().CountConfirmed(mock.Anything, "t1").Return(7, nil)

	a, err := calc.ForTimeslot(context.Background(), &domain.Timeslot{ID: "t1", Capacity: 5})

	require.NoError(t, err)
	assert.Equal(t, 0, a.FreeSpots)
	assert.True(t, a.IsFull())
}

func TestAvailabilityCalculator_ForTimeslots_SingleQuery(t *testing.T) {
	bookings := mocks.NewMockBookingRepo(t)
	calc := NewAvailabilityCalculator(bookings)

	ts := []*domain.Timeslot{
		{ID: "t1", Capacity: 5},
		{ID: "t2", Capacity: 1},
		{ID: "t3", Capacity: 2},
	}
	bookings.EXPECT().CountConfirmedByTimeslots(mock.Anything, []string{"t1", "t2", "t3"}).
		Return(map[string]int{"t1": 1, "t2": 1}, nil).Once()

	res, err := calc.ForTimeslots(context.Background(), ts)

	require.NoError(t, err)
	assert.Equal(t, 4, res["t1"].FreeSpots)
	assert.Equal(t, 0, res["t2"].FreeSpots)
	assert.Equal(t, 2, res["t3"].FreeSpots)
}

func TestAvailabilityCalculator_ForTimeslots_Empty(t *testing.T) {
	calc := NewAvailabilityCalculator(mocks.NewMockBookingRepo(t))

	res, err := calc.ForTimeslots(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestAvailabilityCalculator_ForTimeslots_Error(t *testing.T) {
	bookings := mocks.NewMockBookingRepo(t)
	calc := NewAvailabilityCalculator(bookings)

	dbErr := errors.New("db error")
	bookings.EXPECT().CountConfirmedByTimeslots(mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := calc.ForTimeslots(context.Background(), []*domain.Timeslot{{ID: "t1", Capacity: 1}})

	assert.ErrorIs(t, err, dbErr)
}
