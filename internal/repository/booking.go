package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const bookingColumns = `b.id, b.timeslot_id, b.user_id, b.message, b.status, b.booked_at, b.cancelled_at`

type BookingRepository struct {
	conn
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{conn: newConn(db)}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, timeslot_id, user_id, message, status, booked_at, cancelled_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.exec(
		ctx, query,
		b.ID, b.TimeslotID, b.UserID, b.Message, b.Status, b.BookedAt, b.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", mapPgError(err))
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBookingRow(row)
}

// GetForUpdate locks the booking row until the surrounding transaction ends.
func (r *BookingRepository) GetForUpdate(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1 FOR UPDATE`

	row, err := r.lockedRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	return scanBookingRow(row)
}

// MarkCancelled moves a confirmed booking to cancelled. A booking that is
// already cancelled is left untouched and reported as not found.
func (r *BookingRepository) MarkCancelled(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE bookings
			  SET status = $2, cancelled_at = $3
			  WHERE id = $1 AND status = $4`
	res, err := r.exec(ctx, query, id, domain.BookingStatusCancelled, at, domain.BookingStatusConfirmed)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", mapPgError(err))
	}

	return requireAffected(res, domain.ErrBookingNotFound)
}

func (r *BookingRepository) CancelConfirmedByTimeslot(ctx context.Context, timeslotID string, at time.Time) (int, error) {
	query := `UPDATE bookings
			  SET status = $2, cancelled_at = $3
			  WHERE timeslot_id = $1 AND status = $4`
	res, err := r.exec(ctx, query, timeslotID, domain.BookingStatusCancelled, at, domain.BookingStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("cancel timeslot bookings: %w", mapPgError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return int(n), nil
}

func (r *BookingRepository) HasConfirmed(ctx context.Context, timeslotID, userID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE timeslot_id = $1 AND user_id = $2 AND status = $3
			  )`

	row, err := r.queryRow(ctx, query, timeslotID, userID, domain.BookingStatusConfirmed)
	if err != nil {
		return false, fmt.Errorf("check booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan booking exists: %w", err)
	}

	return exists, nil
}

func (r *BookingRepository) CountConfirmed(ctx context.Context, timeslotID string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE timeslot_id = $1 AND status = $2`

	row, err := r.queryRow(ctx, query, timeslotID, domain.BookingStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan booking count: %w", err)
	}

	return n, nil
}

// CountConfirmedByTimeslots returns confirmed counts for many timeslots in a
// single query. Timeslots without bookings are absent from the map.
func (r *BookingRepository) CountConfirmedByTimeslots(ctx context.Context, timeslotIDs []string) (map[string]int, error) {
	res := make(map[string]int, len(timeslotIDs))
	if len(timeslotIDs) == 0 {
		return res, nil
	}

	query := `SELECT timeslot_id, COUNT(*)
			  FROM bookings
			  WHERE timeslot_id = ANY($1) AND status = $2
			  GROUP BY timeslot_id`

	rows, err := r.query(ctx, query, pq.Array(timeslotIDs), domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count bookings by timeslots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id string
			n  int
		)
		if err = rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan booking count: %w", err)
		}
		res[id] = n
	}

	return res, rows.Err()
}

// List orders bookings by the start of their timeslot, then by booking time.
func (r *BookingRepository) List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.TimeslotIDs) > 0 {
		conds = append(conds, "b.timeslot_id = ANY("+arg(pq.Array(f.TimeslotIDs))+")")
	}
	if f.UserID != "" {
		conds = append(conds, "b.user_id = "+arg(f.UserID))
	}
	if len(f.Statuses) > 0 {
		conds = append(conds, "b.status = ANY("+arg(pq.Array(f.Statuses))+")")
	}
	switch f.Period {
	case domain.PeriodFuture:
		conds = append(conds, "t.end_at > "+arg(time.Now().UTC()))
	case domain.PeriodPast:
		conds = append(conds, "t.end_at <= "+arg(time.Now().UTC()))
	}

	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  JOIN timeslots t ON t.id = b.timeslot_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY t.start_at, b.booked_at"

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		cancelledAt sql.NullTime
	)
	err := s.Scan(
		&b.ID, &b.TimeslotID, &b.UserID, &b.Message,
		&b.Status, &b.BookedAt, &cancelledAt,
	)
	if err != nil {
		return nil, err
	}
	if cancelledAt.Valid {
		at := cancelledAt.Time
		b.CancelledAt = &at
	}
	return &b, nil
}

func scanBookingRow(row *sql.Row) (*domain.Booking, error) {
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return b, nil
}
