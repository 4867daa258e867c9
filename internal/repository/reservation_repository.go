package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashtagbbq/tableside/internal/domain"
	"github.com/hashtagbbq/tableside/internal/kv"
	"github.com/hashtagbbq/tableside/internal/port"
)

// reservationRecord is the persisted representation of one booking.
type reservationRecord struct {
	ID               int64     `json:"id"`
	OutletID         string    `json:"outlet_id"`
	OutletName       string    `json:"outlet_name"`
	CustomerName     string    `json:"customer_name"`
	CustomerPhone    string    `json:"customer_phone"`
	Date             string    `json:"reservation_date"`
	Time             string    `json:"reservation_time"`
	Guests           string    `json:"number_of_guests"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	ConfirmationCode string    `json:"confirmation_code"`
}

type reservationStore struct {
	kv  port.KV
	key string
}

func NewReservations(store port.KV) port.ReservationStore {
	return &reservationStore{
		kv:  store,
		key: kv.KeyReservations,
	}
}

func (s *reservationStore) Append(ctx context.Context, r domain.Reservation) error {
	records, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	records = append(records, reservationRecord{
		ID:               r.ID,
		OutletID:         r.OutletID,
		OutletName:       r.OutletName,
		CustomerName:     r.CustomerName,
		CustomerPhone:    r.CustomerPhone,
		Date:             r.Date,
		Time:             r.Time,
		Guests:           r.Guests,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt.UTC(),
		ConfirmationCode: r.ConfirmationCode,
	})

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("kv.Set: %w", err)
	}

	return nil
}

func (s *reservationStore) List(ctx context.Context) ([]domain.Reservation, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	reservations := make([]domain.Reservation, 0, len(records))
	for _, rec := range records {
		reservations = append(reservations, domain.Reservation{
			ID:               rec.ID,
			OutletID:         rec.OutletID,
			OutletName:       rec.OutletName,
			CustomerName:     rec.CustomerName,
			CustomerPhone:    rec.CustomerPhone,
			Date:             rec.Date,
			Time:             rec.Time,
			Guests:           rec.Guests,
			Status:           domain.ReservationStatus(rec.Status),
			CreatedAt:        rec.CreatedAt,
			ConfirmationCode: rec.ConfirmationCode,
		})
	}

	return reservations, nil
}

// load treats a missing or undecodable stored list as empty, matching the
// cart store's fallback.
func (s *reservationStore) load(ctx context.Context) ([]reservationRecord, error) {
	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("kv.Get: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var records []reservationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil
	}

	return records, nil
}
