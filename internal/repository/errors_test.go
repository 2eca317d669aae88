package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantIs         error
		wantConstraint string
	}{
		{
			name:   "username taken",
			err:    &pq.Error{Code: pgUniqueViolation, Constraint: constraintUsernameKey},
			wantIs: domain.ErrUsernameTaken,
		},
		{
			name:           "confirmed booking unique index",
			err:            &pq.Error{Code: pgUniqueViolation, Constraint: "uq_bookings_confirmed_timeslot_user"},
			wantIs:         domain.ErrConstraintViolation,
			wantConstraint: "uq_bookings_confirmed_timeslot_user",
		},
		{
			name:           "check constraint",
			err:            &pq.Error{Code: pgCheckViolation, Constraint: "chk_timeslots_capacity_positive"},
			wantIs:         domain.ErrConstraintViolation,
			wantConstraint: "chk_timeslots_capacity_positive",
		},
		{
			name:   "unknown user",
			err:    &pq.Error{Code: pgForeignKeyViolation, Constraint: constraintBookingUserFK},
			wantIs: domain.ErrUserNotFound,
		},
		{
			name:   "unknown timeslot",
			err:    &pq.Error{Code: pgForeignKeyViolation, Constraint: constraintBookingTimeslot},
			wantIs: domain.ErrTimeslotNotFound,
		},
		{
			name:   "other pg error passes through",
			err:    &pq.Error{Code: "40001"},
			wantIs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapPgError(tt.err)
			if tt.wantIs == nil {
				assert.Same(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)

			var cv *domain.ConstraintViolationError
			if tt.wantConstraint != "" {
				assert.True(t, errors.As(got, &cv))
				assert.Equal(t, tt.wantConstraint, cv.Constraint)
			}
		})
	}
}

func TestMapPgError_NonPgError(t *testing.T) {
	assert.Equal(t, assert.AnError, mapPgError(assert.AnError))
}
