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

const timeslotColumns = `id, name, description, address, start_at, end_at,
		capacity, status, created_at, updated_at`

type TimeslotRepository struct {
	conn
}

func NewTimeslotRepo(db *dbpg.DB) *TimeslotRepository {
	return &TimeslotRepository{conn: newConn(db)}
}

func (r *TimeslotRepository) Create(ctx context.Context, t *domain.Timeslot) error {
	query := `INSERT INTO timeslots (id, name, description, address, start_at, end_at,
				capacity, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.exec(
		ctx, query,
		t.ID, t.Name, t.Description, t.Address, t.StartAt, t.EndAt,
		t.Capacity, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert timeslot: %w", mapPgError(err))
	}

	return nil
}

func (r *TimeslotRepository) GetByID(ctx context.Context, id string) (*domain.Timeslot, error) {
	query := `SELECT ` + timeslotColumns + ` FROM timeslots WHERE id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get timeslot: %w", err)
	}

	return scanTimeslotRow(row)
}

// GetForUpdate locks the timeslot row until the surrounding transaction ends.
func (r *TimeslotRepository) GetForUpdate(ctx context.Context, id string) (*domain.Timeslot, error) {
	query := `SELECT ` + timeslotColumns + ` FROM timeslots WHERE id = $1 FOR UPDATE`

	row, err := r.lockedRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("lock timeslot: %w", err)
	}

	return scanTimeslotRow(row)
}

func (r *TimeslotRepository) Update(ctx context.Context, t *domain.Timeslot) error {
	query := `UPDATE timeslots
			  SET name = $2, description = $3, address = $4, start_at = $5, end_at = $6,
			      capacity = $7, status = $8, updated_at = $9
			  WHERE id = $1`
	res, err := r.exec(
		ctx, query,
		t.ID, t.Name, t.Description, t.Address, t.StartAt, t.EndAt,
		t.Capacity, t.Status, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update timeslot: %w", mapPgError(err))
	}

	return requireAffected(res, domain.ErrTimeslotNotFound)
}

func (r *TimeslotRepository) UpdateStatus(ctx context.Context, id string, status domain.TimeslotStatus, at time.Time) error {
	query := `UPDATE timeslots SET status = $2, updated_at = $3 WHERE id = $1`
	res, err := r.exec(ctx, query, id, status, at)
	if err != nil {
		return fmt.Errorf("update timeslot status: %w", mapPgError(err))
	}

	return requireAffected(res, domain.ErrTimeslotNotFound)
}

func (r *TimeslotRepository) List(ctx context.Context, f domain.TimeslotFilter) ([]*domain.Timeslot, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.IDs) > 0 {
		conds = append(conds, "id = ANY("+arg(pq.Array(f.IDs))+")")
	}
	if len(f.Statuses) > 0 {
		conds = append(conds, "status = ANY("+arg(pq.Array(f.Statuses))+")")
	}
	switch f.Period {
	case domain.PeriodFuture:
		conds = append(conds, "end_at > "+arg(time.Now().UTC()))
	case domain.PeriodPast:
		conds = append(conds, "end_at <= "+arg(time.Now().UTC()))
	}

	query := `SELECT ` + timeslotColumns + ` FROM timeslots`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY start_at, id"

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list timeslots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Timeslot
	for rows.Next() {
		t, err := scanTimeslot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan timeslot: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func scanTimeslot(s scanner) (*domain.Timeslot, error) {
	var t domain.Timeslot
	err := s.Scan(
		&t.ID, &t.Name, &t.Description, &t.Address, &t.StartAt, &t.EndAt,
		&t.Capacity, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTimeslotRow(row *sql.Row) (*domain.Timeslot, error) {
	t, err := scanTimeslot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTimeslotNotFound
		}
		return nil, fmt.Errorf("scan timeslot: %w", err)
	}
	return t, nil
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
