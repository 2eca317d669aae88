package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memServices struct {
	store   *memStore
	booking *BookingService
	cancel  *CancellationService
}

func newMemServices(t *testing.T) memServices {
	s := newMemStore()
	log := newTestLogger(t)
	return memServices{
		store:   s,
		booking: NewBookingService(s, memTimeslots{s}, memBookings{s}, log),
		cancel:  NewCancellationService(s, memTimeslots{s}, memBookings{s}, log),
	}
}

func (m memServices) seed(id string, capacity int) {
	m.store.addTimeslot(*openTimeslot(id, capacity))
}

func countStatus(bookings []domain.Booking, status domain.BookingStatus) int {
	n := 0
	for _, b := range bookings {
		if b.Status == status {
			n++
		}
	}
	return n
}

func requireConsistent(t *testing.T, m memServices, timeslotID string) {
	t.Helper()
	ts := m.store.timeslot(timeslotID)
	bookings := m.store.snapshotBookings(timeslotID)
	assert.LessOrEqual(t, countStatus(bookings, domain.BookingStatusConfirmed), ts.Capacity)

	perUser := map[string]int{}
	for _, b := range bookings {
		assert.Equal(t, b.Status == domain.BookingStatusCancelled, b.CancelledAt != nil, "booking %s", b.ID)
		if b.IsConfirmed() {
			perUser[b.UserID]++
		}
	}
	for user, n := range perUser {
		assert.Equal(t, 1, n, "user %s holds %d confirmed bookings", user, n)
	}
}

func TestBooking_Concurrent_CapacityNeverExceeded(t *testing.T) {
	m := newMemServices(t)
	m.seed("t1", 10)

	const attempts = 50
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		full      int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			actor := domain.Actor{ID: fmt.Sprintf("user-%d", i)}
			_, err := m.booking.AttemptBook(context.Background(), actor, "t1", "")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrTimeslotFull):
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, attempts-10, full)
	assert.Equal(t, 10, countStatus(m.store.snapshotBookings("t1"), domain.BookingStatusConfirmed))
	requireConsistent(t, m, "t1")
}

func TestBooking_Concurrent_LastSpotRace(t *testing.T) {
	m := newMemServices(t)
	m.seed("t1", 1)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, actor := range []domain.Actor{alice, bob} {
		wg.Add(1)
		go func(i int, actor domain.Actor) {
			defer wg.Done()
			_, errs[i] = m.booking.AttemptBook(context.Background(), actor, "t1", "")
		}(i, actor)
	}
	wg.Wait()

	var ok, full int
	for _, err := range errs {
		if err == nil {
			ok++
		} else if errors.Is(err, domain.ErrTimeslotFull) {
			full++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, full)
	requireConsistent(t, m, "t1")
}

func TestBooking_Concurrent_SameUserBooksOnce(t *testing.T) {
	m := newMemServices(t)
	m.seed("t1", 5)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ok   int
		dups int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.booking.AttemptBook(context.Background(), alice, "t1", "")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, domain.ErrDuplicateBooking) {
				dups++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, 9, dups)
	requireConsistent(t, m, "t1")
}

func TestBooking_RebookAfterCancel(t *testing.T) {
	m := newMemServices(t)
	m.seed("t1", 1)
	ctx := context.Background()

	first, err := m.booking.AttemptBook(ctx, alice, "t1", "")
	require.NoError(t, err)

	_, err = m.booking.AttemptBook(ctx, bob, "t1", "")
	require.ErrorIs(t, err, domain.ErrTimeslotFull)

	outcome, err := m.cancel.CancelBooking(ctx, alice, first.ID)
	require.NoError(t, err)
	require.Equal(t, domain.CancelOutcomeCancelled, outcome)

	second, err := m.booking.AttemptBook(ctx, alice, "t1", "again")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	bookings := m.store.snapshotBookings("t1")
	assert.Len(t, bookings, 2)
	assert.Equal(t, 1, countStatus(bookings, domain.BookingStatusCancelled))
	requireConsistent(t, m, "t1")
}

func TestBooking_CancelTwice(t *testing.T) {
	m := newMemServices(t)
	m.seed("t1", 3)
	ctx := context.Background()

	b, err := m.booking.AttemptBook(ctx, alice, "t1", "")
	require.NoError(t, err)

	outcomes := make([]domain.CancelOutcome, 2)
	var wg sync.WaitGroup
	for i := range outcomes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			outcomes[i], err = m.cancel.CancelBooking(ctx, alice, b.ID)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t,
		[]domain.CancelOutcome{domain.CancelOutcomeCancelled, domain.CancelOutcomeAlreadyCancelled},
		outcomes,
	)

	stored := m.store.snapshotBookings("t1")
	require.Len(t, stored, 1)
	require.NotNil(t, stored[0].CancelledAt)
}

func TestBooking_CancelTimeslotCascades(t *testing.T) {
	m := newMemServices(t)
	m.seed("t1", 5)
	ctx := context.Background()

	for _, actor := range []domain.Actor{alice, bob, {ID: "u3"}} {
		_, err := m.booking.AttemptBook(ctx, actor, "t1", "")
		require.NoError(t, err)
	}

	res, err := m.cancel.CancelTimeslot(ctx, staff, "t1")
	require.NoError(t, err)
	assert.Equal(t, domain.CancelOutcomeCancelled, res.Outcome)
	assert.Equal(t, 3, res.CancelledBookings)

	assert.Equal(t, domain.TimeslotStatusCancelled, m.store.timeslot("t1").Status)
	bookings := m.store.snapshotBookings("t1")
	assert.Len(t, bookings, 3)
	assert.Equal(t, 3, countStatus(bookings, domain.BookingStatusCancelled))
	requireConsistent(t, m, "t1")

	_, err = m.booking.AttemptBook(ctx, domain.Actor{ID: "u4"}, "t1", "")
	assert.ErrorIs(t, err, domain.ErrTimeslotNotOpen)

	again, err := m.cancel.CancelTimeslot(ctx, staff, "t1")
	require.NoError(t, err)
	assert.Equal(t, domain.CancelOutcomeAlreadyCancelled, again.Outcome)
}

func TestBooking_CancelTimeslotRacesWithBookings(t *testing.T) {
	m := newMemServices(t)
	m.seed("t1", 20)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := m.booking.AttemptBook(ctx, domain.Actor{ID: fmt.Sprintf("user-%d", i)}, "t1", "")
			if err != nil && !errors.Is(err, domain.ErrTimeslotNotOpen) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := m.cancel.CancelTimeslot(ctx, staff, "t1")
		assert.NoError(t, err)
	}()
	wg.Wait()

	// whatever got in before the cancellation was released by it
	bookings := m.store.snapshotBookings("t1")
	assert.Zero(t, countStatus(bookings, domain.BookingStatusConfirmed))
	requireConsistent(t, m, "t1")
}

func TestBooking_ExpiredTimeslot(t *testing.T) {
	m := newMemServices(t)
	ts := openTimeslot("t1", 5)
	ts.StartAt = time.Now().Add(-2 * time.Hour)
	ts.EndAt = time.Now().Add(-time.Minute)
	m.store.addTimeslot(*ts)

	_, err := m.booking.AttemptBook(context.Background(), alice, "t1", "")

	assert.ErrorIs(t, err, domain.ErrTimeslotExpired)
	assert.Empty(t, m.store.snapshotBookings("t1"))
}

type failingCascade struct {
	memBookings
}

func (failingCascade) CancelConfirmedByTimeslot(context.Context, string, time.Time) (int, error) {
	return 0, errors.New("connection lost")
}

func TestCancelTimeslot_RollsBackOnFailure(t *testing.T) {
	m := newMemServices(t)
	m.seed("t1", 5)
	ctx := context.Background()

	_, err := m.booking.AttemptBook(ctx, alice, "t1", "")
	require.NoError(t, err)

	svc := NewCancellationService(m.store, memTimeslots{m.store}, failingCascade{memBookings{m.store}}, newTestLogger(t))
	_, err = svc.CancelTimeslot(ctx, staff, "t1")
	require.Error(t, err)

	assert.Equal(t, domain.TimeslotStatusOpen, m.store.timeslot("t1").Status)
	assert.Equal(t, 1, countStatus(m.store.snapshotBookings("t1"), domain.BookingStatusConfirmed))
}
