package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/stpnv0/TimeslotBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type timeslotDeps struct {
	tx        *mocks.MockTxManager
	timeslots *mocks.MockTimeslotRepo
	bookings  *mocks.MockBookingRepo
	svc       *TimeslotService
}

func newTimeslotDeps(t *testing.T) timeslotDeps {
	d := timeslotDeps{
		tx:        mocks.NewMockTxManager(t),
		timeslots: mocks.NewMockTimeslotRepo(t),
		bookings:  mocks.NewMockBookingRepo(t),
	}
	d.svc = NewTimeslotService(d.tx, d.timeslots, d.bookings, newTestLogger(t))
	return d
}

func validCreateInput() domain.CreateTimeslotInput {
	start := time.Now().Add(48 * time.Hour)
	return domain.CreateTimeslotInput{
		Name:     "Pottery",
		Address:  "Main st. 1",
		StartAt:  start,
		EndAt:    start.Add(2 * time.Hour),
		Capacity: 8,
	}
}

func updateInputFrom(ts *domain.Timeslot) domain.UpdateTimeslotInput {
	return domain.UpdateTimeslotInput{
		Name:     ts.Name,
		StartAt:  ts.StartAt,
		EndAt:    ts.EndAt,
		Capacity: ts.Capacity,
		Status:   ts.Status,
	}
}

func TestTimeslotService_CreateTimeslot_Success(t *testing.T) {
	d := newTimeslotDeps(t)

	d.timeslots.EXPECT().Create(mock.Anything, mock.MatchedBy(func(ts *domain.Timeslot) bool {
		return ts.Name == "Pottery" && ts.Capacity == 8 && ts.Status == domain.TimeslotStatusOpen
	})).Return(nil)

	ts, err := d.svc.CreateTimeslot(context.Background(), staff, validCreateInput())

	require.NoError(t, err)
	assert.NotEmpty(t, ts.ID)
	assert.Equal(t, time.UTC, ts.StartAt.Location())
}

func TestTimeslotService_CreateTimeslot_Hidden(t *testing.T) {
	d := newTimeslotDeps(t)

	d.timeslots.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	in := validCreateInput()
	in.Hidden = true
	ts, err := d.svc.CreateTimeslot(context.Background(), staff, in)

	require.NoError(t, err)
	assert.Equal(t, domain.TimeslotStatusHidden, ts.Status)
}

func TestTimeslotService_CreateTimeslot_RequiresStaff(t *testing.T) {
	d := newTimeslotDeps(t)

	_, err := d.svc.CreateTimeslot(context.Background(), alice, validCreateInput())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTimeslotService_CreateTimeslot_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *domain.CreateTimeslotInput)
	}{
		{"empty name", func(in *domain.CreateTimeslotInput) { in.Name = "  " }},
		{"end before start", func(in *domain.CreateTimeslotInput) { in.EndAt = in.StartAt.Add(-time.Minute) }},
		{"end equals start", func(in *domain.CreateTimeslotInput) { in.EndAt = in.StartAt }},
		{"zero capacity", func(in *domain.CreateTimeslotInput) { in.Capacity = 0 }},
		{"ended", func(in *domain.CreateTimeslotInput) {
			in.StartAt = time.Now().Add(-2 * time.Hour)
			in.EndAt = time.Now().Add(-time.Hour)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTimeslotDeps(t)
			in := validCreateInput()
			tt.modify(&in)

			_, err := d.svc.CreateTimeslot(context.Background(), staff, in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTimeslotService_UpdateTimeslot_Success(t *testing.T) {
	d := newTimeslotDeps(t)
	passThroughTx(d.tx)

	current := openTimeslot("t1", 10)
	d.timeslots.EXPECT().GetForUpdate(mock.Anything, "t1").Return(current, nil)
	d.bookings.EXPECT().CountConfirmed(mock.Anything, "t1").Return(4, nil)
	d.timeslots.EXPECT().Update(mock.Anything, mock.MatchedBy(func(ts *domain.Timeslot) bool {
		return ts.Capacity == 4 && ts.Status == domain.TimeslotStatusHidden && ts.Name == "Yoga II"
	})).Return(nil)

	in := updateInputFrom(current)
	in.Name = "Yoga II"
	in.Capacity = 4
	in.Status = domain.TimeslotStatusHidden

	ts, err := d.svc.UpdateTimeslot(context.Background(), staff, "t1", in)

	require.NoError(t, err)
	assert.Equal(t, domain.TimeslotStatusHidden, ts.Status)
}

func TestTimeslotService_UpdateTimeslot_CapacityBelowConfirmed(t *testing.T) {
	d := newTimeslotDeps(t)
	passThroughTx(d.tx)

	current := openTimeslot("t1", 10)
	d.timeslots.EXPECT().GetForUpdate(mock.Anything, "t1").Return(current, nil)
	d.bookings.EXPECT().CountConfirmed(mock.Anything, "t1").Return(6, nil)

	in := updateInputFrom(current)
	in.Capacity = 5

	_, err := d.svc.UpdateTimeslot(context.Background(), staff, "t1", in)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTimeslotService_UpdateTimeslot_CancelledIsTerminal(t *testing.T) {
	d := newTimeslotDeps(t)
	passThroughTx(d.tx)

	current := openTimeslot("t1", 10)
	current.Status = domain.TimeslotStatusCancelled
	d.timeslots.EXPECT().GetForUpdate(mock.Anything, "t1").Return(current, nil)

	in := updateInputFrom(current)
	in.Status = domain.TimeslotStatusOpen

	_, err := d.svc.UpdateTimeslot(context.Background(), staff, "t1", in)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTimeslotService_UpdateTimeslot_CannotCancelThroughEdit(t *testing.T) {
	d := newTimeslotDeps(t)
	passThroughTx(d.tx)

	current := openTimeslot("t1", 10)
	d.timeslots.EXPECT().GetForUpdate(mock.Anything, "t1").Return(current, nil)

	in := updateInputFrom(current)
	in.Status = domain.TimeslotStatusCancelled

	_, err := d.svc.UpdateTimeslot(context.Background(), staff, "t1", in)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestTimeslotService_UpdateTimeslot_RequiresStaff(t *testing.T) {
	d := newTimeslotDeps(t)

	_, err := d.svc.UpdateTimeslot(context.Background(), alice, "t1", updateInputFrom(openTimeslot("t1", 1)))

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTimeslotService_GetTimeslot_Anonymous(t *testing.T) {
	d := newTimeslotDeps(t)

	d.timeslots.EXPECT().GetByID(mock.Anything, "t1").Return(openTimeslot("t1", 5), nil)
	d.bookings.EXPECT().CountConfirmed(mock.Anything, "t1").Return(2, nil)

	details, err := d.svc.GetTimeslot(context.Background(), domain.Actor{}, "t1")

	require.NoError(t, err)
	assert.Equal(t, 3, details.Availability.FreeSpots)
	assert.Empty(t, details.MyBookingID)
	assert.Nil(t, details.Bookings)
}

func TestTimeslotService_GetTimeslot_UserSeesOwnBooking(t *testing.T) {
	d := newTimeslotDeps(t)

	d.timeslots.EXPECT().GetByID(mock.Anything, "t1").Return(openTimeslot("t1", 5), nil)
	d.bookings.EXPECT().CountConfirmed(mock.Anything, "t1").Return(1, nil)
	d.bookings.EXPECT().List(mock.Anything, domain.BookingFilter{
		TimeslotIDs: []string{"t1"},
		UserID:      "u1",
		Statuses:    []domain.BookingStatus{domain.BookingStatusConfirmed},
	}).Return([]*domain.Booking{confirmedBooking("b1", "t1", "u1")}, nil)

	details, err := d.svc.GetTimeslot(context.Background(), alice, "t1")

	require.NoError(t, err)
	assert.Equal(t, "b1", details.MyBookingID)
	assert.Nil(t, details.Bookings)
}

func TestTimeslotService_GetTimeslot_StaffSeesBookings(t *testing.T) {
	d := newTimeslotDeps(t)

	ts := openTimeslot("t1", 5)
	ts.Status = domain.TimeslotStatusHidden
	d.timeslots.EXPECT().GetByID(mock.Anything, "t1").Return(ts, nil)
	d.bookings.EXPECT().CountConfirmed(mock.Anything, "t1").Return(2, nil)
	d.bookings.EXPECT().List(mock.Anything, domain.BookingFilter{TimeslotIDs: []string{"t1"}}).
		Return([]*domain.Booking{
			confirmedBooking("b1", "t1", "u1"),
			confirmedBooking("b2", "t1", "u2"),
		}, nil)

	details, err := d.svc.GetTimeslot(context.Background(), staff, "t1")

	require.NoError(t, err)
	assert.Len(t, details.Bookings, 2)
	assert.Empty(t, details.MyBookingID)
}

func TestTimeslotService_GetTimeslot_HiddenForUsers(t *testing.T) {
	d := newTimeslotDeps(t)

	ts := openTimeslot("t1", 5)
	ts.Status = domain.TimeslotStatusHidden
	d.timeslots.EXPECT().GetByID(mock.Anything, "t1").Return(ts, nil)

	_, err := d.svc.GetTimeslot(context.Background(), alice, "t1")

	assert.ErrorIs(t, err, domain.ErrTimeslotNotFound)
}

func TestTimeslotService_ListFutureTimeslots_User(t *testing.T) {
	d := newTimeslotDeps(t)

	t1, t2 := openTimeslot("t1", 2), openTimeslot("t2", 4)
	d.timeslots.EXPECT().List(mock.Anything, domain.TimeslotFilter{
		Statuses: []domain.TimeslotStatus{domain.TimeslotStatusOpen},
		Period:   domain.PeriodFuture,
	}).Return([]*domain.Timeslot{t1, t2}, nil)
	d.bookings.EXPECT().CountConfirmedByTimeslots(mock.Anything, []string{"t1", "t2"}).
		Return(map[string]int{"t1": 2}, nil)
	d.bookings.EXPECT().List(mock.Anything, domain.BookingFilter{
		TimeslotIDs: []string{"t1", "t2"},
		UserID:      "u1",
		Statuses:    []domain.BookingStatus{domain.BookingStatusConfirmed},
	}).Return([]*domain.Booking{confirmedBooking("b9", "t2", "u1")}, nil)

	items, err := d.svc.ListFutureTimeslots(context.Background(), alice)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Availability.FreeSpots)
	assert.Empty(t, items[0].MyBookingID)
	assert.Equal(t, 4, items[1].Availability.FreeSpots)
	assert.Equal(t, "b9", items[1].MyBookingID)
}

func TestTimeslotService_ListFutureTimeslots_StaffSeesAllStatuses(t *testing.T) {
	d := newTimeslotDeps(t)

	d.timeslots.EXPECT().List(mock.Anything, domain.TimeslotFilter{Period: domain.PeriodFuture}).
		Return(nil, nil)

	items, err := d.svc.ListFutureTimeslots(context.Background(), staff)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTimeslotService_ListFutureTimeslots_Anonymous(t *testing.T) {
	d := newTimeslotDeps(t)

	d.timeslots.EXPECT().List(mock.Anything, mock.Anything).Return([]*domain.Timeslot{openTimeslot("t1", 3)}, nil)
	d.bookings.EXPECT().CountConfirmedByTimeslots(mock.Anything, []string{"t1"}).Return(map[string]int{}, nil)

	items, err := d.svc.ListFutureTimeslots(context.Background(), domain.Actor{})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Availability.FreeSpots)
}
