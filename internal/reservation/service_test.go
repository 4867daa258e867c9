package reservation_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashtagbbq/tableside/internal/domain"
	"github.com/hashtagbbq/tableside/internal/kv"
	"github.com/hashtagbbq/tableside/internal/port"
	"github.com/hashtagbbq/tableside/internal/repository"
	"github.com/hashtagbbq/tableside/internal/reservation"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

var chandkheda = domain.Outlet{
	ID:   "1",
	Name: "Hashtag BBQ (Chandkheda)",
}

func newBookingService(t *testing.T, opts ...reservation.Option) (*reservation.Service, port.ReservationStore) {
	t.Helper()

	store := repository.NewReservations(kv.NewMemory())
	return reservation.NewService(store, opts...), store
}

func TestReserveAppendsOneRecord(t *testing.T) {
	ctx := t.Context()

	svc, store := newBookingService(t,
		reservation.WithTokenSource(staticTokens("7GX204QD")),
		reservation.WithClock(func() time.Time { return now }),
	)

	booked, fieldErrors, err := svc.Reserve(ctx, chandkheda, validRequest())
	require.NoError(t, err)
	require.Empty(t, fieldErrors)

	assert.Equal(t, now.UnixMilli(), booked.ID)
	assert.Equal(t, chandkheda.ID, booked.OutletID)
	assert.Equal(t, chandkheda.Name, booked.OutletName)
	assert.Equal(t, domain.ReservationPending, booked.Status)
	assert.Equal(t, "7GX204QD", booked.ConfirmationCode)
	assert.Equal(t, now, booked.CreatedAt)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, booked.ConfirmationCode, list[0].ConfirmationCode)
	assert.Equal(t, "9876543210", list[0].CustomerPhone)
}

func TestReserveInvalidRequestStoresNothing(t *testing.T) {
	ctx := t.Context()

	svc, store := newBookingService(t)

	req := validRequest()
	req.CustomerPhone = "12345"
	req.Time = ""

	_, fieldErrors, err := svc.Reserve(ctx, chandkheda, req)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		reservation.FieldPhone: "Please enter a valid 10-digit phone number",
		reservation.FieldTime:  "Time is required",
	}, fieldErrors)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReserveDefaultCodeShape(t *testing.T) {
	ctx := t.Context()

	svc, _ := newBookingService(t, reservation.WithClock(func() time.Time { return now }))

	seen := make(map[string]bool)
	for range 20 {
		booked, fieldErrors, err := svc.Reserve(ctx, chandkheda, validRequest())
		require.NoError(t, err)
		require.Empty(t, fieldErrors)

		assert.Regexp(t, codePattern, booked.ConfirmationCode)
		seen[booked.ConfirmationCode] = true
	}

	// Codes are opaque random tokens; twenty draws colliding down to a
	// handful would mean the generator is broken.
	assert.Greater(t, len(seen), 15)
}
