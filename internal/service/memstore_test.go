package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/stpnv0/TimeslotBooker/internal/domain"
)

// memStore is an in-memory store that mimics the database semantics the
// services rely on: GetForUpdate holds a row lock until the transaction ends,
// a failed transaction is rolled back, and the partial unique index on
// confirmed bookings is enforced.
type memStore struct {
	mu        sync.Mutex
	timeslots map[string]domain.Timeslot
	bookings  map[string]domain.Booking
	rowLocks  map[string]*sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{
		timeslots: make(map[string]domain.Timeslot),
		bookings:  make(map[string]domain.Booking),
		rowLocks:  make(map[string]*sync.Mutex),
	}
}

type memTx struct {
	held  map[string]*sync.Mutex
	order []string
	undo  []func()
}

type memTxKey struct{}

func (s *memStore) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(memTxKey{}).(*memTx); ok {
		return fn(ctx)
	}

	tx := &memTx{held: make(map[string]*sync.Mutex)}
	err := fn(context.WithValue(ctx, memTxKey{}, tx))
	if err != nil {
		s.mu.Lock()
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		s.mu.Unlock()
	}

	for i := len(tx.order) - 1; i >= 0; i-- {
		tx.held[tx.order[i]].Unlock()
	}

	return err
}

func (s *memStore) lockRow(ctx context.Context, key string) error {
	tx, ok := ctx.Value(memTxKey{}).(*memTx)
	if !ok {
		return errors.New("row lock requires a transaction")
	}
	if _, held := tx.held[key]; held {
		return nil
	}

	s.mu.Lock()
	l, ok := s.rowLocks[key]
	if !ok {
		l = &sync.Mutex{}
		s.rowLocks[key] = l
	}
	s.mu.Unlock()

	l.Lock()
	tx.held[key] = l
	tx.order = append(tx.order, key)
	return nil
}

// journal registers an undo step; callers hold s.mu.
func (s *memStore) journal(ctx context.Context, undo func()) {
	if tx, ok := ctx.Value(memTxKey{}).(*memTx); ok {
		tx.undo = append(tx.undo, undo)
	}
}

func (s *memStore) addTimeslot(t domain.Timeslot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeslots[t.ID] = t
}

func (s *memStore) snapshotBookings(timeslotID string) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []domain.Booking
	for _, b := range s.bookings {
		if b.TimeslotID == timeslotID {
			res = append(res, b)
		}
	}
	return res
}

func (s *memStore) timeslot(id string) domain.Timeslot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeslots[id]
}

func matchesPeriod(p domain.Period, end, now time.Time) bool {
	switch p {
	case domain.PeriodFuture:
		return end.After(now)
	case domain.PeriodPast:
		return !end.After(now)
	}
	return true
}

// inFilter treats an empty set as "no filter".
func inFilter[T comparable](set []T, v T) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

type memTimeslots struct{ *memStore }

func (r memTimeslots) Create(ctx context.Context, t *domain.Timeslot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeslots[t.ID] = *t
	r.journal(ctx, func() { delete(r.timeslots, t.ID) })
	return nil
}

func (r memTimeslots) GetByID(_ context.Context, id string) (*domain.Timeslot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.timeslots[id]
	if !ok {
		return nil, domain.ErrTimeslotNotFound
	}
	return &t, nil
}

func (r memTimeslots) GetForUpdate(ctx context.Context, id string) (*domain.Timeslot, error) {
	if err := r.lockRow(ctx, "timeslot:"+id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r memTimeslots) Update(ctx context.Context, t *domain.Timeslot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.timeslots[t.ID]
	if !ok {
		return domain.ErrTimeslotNotFound
	}
	r.timeslots[t.ID] = *t
	r.journal(ctx, func() { r.timeslots[t.ID] = prev })
	return nil
}

func (r memTimeslots) UpdateStatus(ctx context.Context, id string, status domain.TimeslotStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.timeslots[id]
	if !ok {
		return domain.ErrTimeslotNotFound
	}
	next := prev
	next.Status = status
	next.UpdatedAt = at
	r.timeslots[id] = next
	r.journal(ctx, func() { r.timeslots[id] = prev })
	return nil
}

func (r memTimeslots) List(_ context.Context, f domain.TimeslotFilter) ([]*domain.Timeslot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var res []*domain.Timeslot
	for _, t := range r.timeslots {
		if inFilter(f.IDs, t.ID) && inFilter(f.Statuses, t.Status) && matchesPeriod(f.Period, t.EndAt, now) {
			t := t
			res = append(res, &t)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].StartAt.Before(res[j].StartAt) })
	return res, nil
}

type memBookings struct{ *memStore }

func (r memBookings) Create(ctx context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.timeslots[b.TimeslotID]; !ok {
		return domain.ErrTimeslotNotFound
	}
	if b.IsConfirmed() {
		for _, existing := range r.bookings {
			if existing.TimeslotID == b.TimeslotID && existing.UserID == b.UserID && existing.IsConfirmed() {
				return &domain.ConstraintViolationError{Constraint: "uq_bookings_confirmed_timeslot_user"}
			}
		}
	}
	r.bookings[b.ID] = *b
	r.journal(ctx, func() { delete(r.bookings, b.ID) })
	return nil
}

func (r memBookings) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r memBookings) GetForUpdate(ctx context.Context, id string) (*domain.Booking, error) {
	if err := r.lockRow(ctx, "booking:"+id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r memBookings) MarkCancelled(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.bookings[id]
	if !ok || !prev.IsConfirmed() {
		return domain.ErrBookingNotFound
	}
	r.bookings[id] = cancelled(prev, at)
	r.journal(ctx, func() { r.bookings[id] = prev })
	return nil
}

func (r memBookings) CancelConfirmedByTimeslot(ctx context.Context, timeslotID string, at time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, b := range r.bookings {
		if b.TimeslotID != timeslotID || !b.IsConfirmed() {
			continue
		}
		prev := b
		r.bookings[id] = cancelled(b, at)
		r.journal(ctx, func() { r.bookings[prev.ID] = prev })
		n++
	}
	return n, nil
}

func (r memBookings) HasConfirmed(_ context.Context, timeslotID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.TimeslotID == timeslotID && b.UserID == userID && b.IsConfirmed() {
			return true, nil
		}
	}
	return false, nil
}

func (r memBookings) CountConfirmed(_ context.Context, timeslotID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, b := range r.bookings {
		if b.TimeslotID == timeslotID && b.IsConfirmed() {
			n++
		}
	}
	return n, nil
}

func (r memBookings) CountConfirmedByTimeslots(ctx context.Context, timeslotIDs []string) (map[string]int, error) {
	res := make(map[string]int, len(timeslotIDs))
	for _, id := range timeslotIDs {
		n, _ := r.CountConfirmed(ctx, id)
		if n > 0 {
			res[id] = n
		}
	}
	return res, nil
}

func (r memBookings) List(_ context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var res []*domain.Booking
	for _, b := range r.bookings {
		t := r.timeslots[b.TimeslotID]
		if !inFilter(f.TimeslotIDs, b.TimeslotID) || !inFilter(f.Statuses, b.Status) ||
			(f.UserID != "" && f.UserID != b.UserID) || !matchesPeriod(f.Period, t.EndAt, now) {
			continue
		}
		b := b
		res = append(res, &b)
	}
	sort.Slice(res, func(i, j int) bool {
		ti, tj := r.timeslots[res[i].TimeslotID].StartAt, r.timeslots[res[j].TimeslotID].StartAt
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return res[i].BookedAt.Before(res[j].BookedAt)
	})
	return res, nil
}

func cancelled(b domain.Booking, at time.Time) domain.Booking {
	b.Status = domain.BookingStatusCancelled
	b.CancelledAt = &at
	return b
}
