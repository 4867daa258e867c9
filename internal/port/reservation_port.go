package port

import (
	"context"

	"github.com/hashtagbbq/tableside/internal/domain"
)

// ReservationStore keeps the append-only list of booking records.
type ReservationStore interface {
	Append(ctx context.Context, r domain.Reservation) error
	List(ctx context.Context) ([]domain.Reservation, error)
}

// TokenSource produces confirmation codes. It exists as a port so tests can
// substitute a deterministic source.
type TokenSource interface {
	Token() string
}
