package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TimeslotBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetForUpdate(ctx context.Context, id string) (*domain.Booking, error)
	MarkCancelled(ctx context.Context, id string, at time.Time) error
	CancelConfirmedByTimeslot(ctx context.Context, timeslotID string, at time.Time) (int, error)
	HasConfirmed(ctx context.Context, timeslotID, userID string) (bool, error)
	CountConfirmed(ctx context.Context, timeslotID string) (int, error)
	CountConfirmedByTimeslots(ctx context.Context, timeslotIDs []string) (map[string]int, error)
	List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error)
}
