package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/hashtagbbq/tableside/internal/domain"
	"github.com/hashtagbbq/tableside/internal/port"
)

// Service books tables: it validates a request and, when clean, appends a
// pending reservation to the persisted list.
type Service struct {
	store  port.ReservationStore
	tokens port.TokenSource
	now    func() time.Time
}

type Option func(*Service)

// WithTokenSource swaps the confirmation-code generator.
func WithTokenSource(tokens port.TokenSource) Option {
	return func(s *Service) { s.tokens = tokens }
}

// WithClock swaps the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store port.ReservationStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		tokens: randomTokens{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reserve validates the request against the current clock. Field errors are
// returned as a map and are not an error; the error return is for storage
// failures only. On success the created record is returned, already
// persisted, with a fresh confirmation code and pending status.
func (s *Service) Reserve(ctx context.Context, outlet domain.Outlet, req domain.ReservationRequest) (domain.Reservation, map[string]string, error) {
	now := s.now()

	if fieldErrors := Validate(req, now); len(fieldErrors) > 0 {
		return domain.Reservation{}, fieldErrors, nil
	}

	reservation := domain.Reservation{
		ID:               now.UnixMilli(),
		OutletID:         outlet.ID,
		OutletName:       outlet.Name,
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		Date:             req.Date,
		Time:             req.Time,
		Guests:           req.Guests,
		Status:           domain.ReservationPending,
		CreatedAt:        now,
		ConfirmationCode: s.tokens.Token(),
	}

	if err := s.store.Append(ctx, reservation); err != nil {
		return domain.Reservation{}, nil, fmt.Errorf("store.Append: %w", err)
	}

	return reservation, nil, nil
}
