package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TimeslotBooker/internal/domain"
)

type TimeslotRepo interface {
	Create(ctx context.Context, t *domain.Timeslot) error
	GetByID(ctx context.Context, id string) (*domain.Timeslot, error)
	GetForUpdate(ctx context.Context, id string) (*domain.Timeslot, error)
	Update(ctx context.Context, t *domain.Timeslot) error
	UpdateStatus(ctx context.Context, id string, status domain.TimeslotStatus, at time.Time) error
	List(ctx context.Context, f domain.TimeslotFilter) ([]*domain.Timeslot, error)
}
