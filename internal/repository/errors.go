package repository

import (
	"errors"

	"github.com/lib/pq"
	"github.com/stpnv0/TimeslotBooker/internal/domain"
)

const (
	pgUniqueViolation     = pq.ErrorCode("23505")
	pgForeignKeyViolation = pq.ErrorCode("23503")
	pgCheckViolation      = pq.ErrorCode("23514")
)

const (
	constraintUsernameKey     = "users_username_key"
	constraintBookingUserFK   = "bookings_user_id_fkey"
	constraintBookingTimeslot = "bookings_timeslot_id_fkey"
)

// mapPgError translates storage-level rejections into domain errors. Errors
// that are not *pq.Error pass through unchanged.
func mapPgError(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.Constraint == constraintUsernameKey {
			return domain.ErrUsernameTaken
		}
		return &domain.ConstraintViolationError{Constraint: pgErr.Constraint, Err: err}
	case pgCheckViolation:
		return &domain.ConstraintViolationError{Constraint: pgErr.Constraint, Err: err}
	case pgForeignKeyViolation:
		switch pgErr.Constraint {
		case constraintBookingUserFK:
			return domain.ErrUserNotFound
		case constraintBookingTimeslot:
			return domain.ErrTimeslotNotFound
		}
		return &domain.ConstraintViolationError{Constraint: pgErr.Constraint, Err: err}
	}

	return err
}
