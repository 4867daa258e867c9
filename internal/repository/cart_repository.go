package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/text/currency"

	"github.com/hashtagbbq/tableside/internal/domain"
	"github.com/hashtagbbq/tableside/internal/kv"
	"github.com/hashtagbbq/tableside/internal/port"
)

// cartItemRecord is the persisted representation of one cart line.
type cartItemRecord struct {
	ItemID        string    `json:"item_id"`
	Customization string    `json:"customization"`
	PriceAmount   int64     `json:"price_amount"`
	PriceCurrency string    `json:"price_currency"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"added_at"`
}

type cartStore struct {
	kv  port.KV
	key string
	now func() time.Time
}

func NewCart(store port.KV) port.CartStore {
	return &cartStore{
		kv:  store,
		key: kv.KeyCart,
		now: time.Now,
	}
}

func (s *cartStore) Get(ctx context.Context) (domain.Cart, error) {
	records, err := s.load(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load: %w", err)
	}

	return mapItemRecordsToDomain(records)
}

func (s *cartStore) Add(ctx context.Context, item domain.CartLineItem, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}

	records, err := s.load(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load: %w", err)
	}

	if idx := findRecord(records, item.ItemID, item.Customization); idx >= 0 {
		records[idx].Quantity += quantity
	} else {
		records = append(records, cartItemRecord{
			ItemID:        item.ItemID,
			Customization: item.Customization,
			PriceAmount:   item.UnitPrice.Amount,
			PriceCurrency: item.UnitPrice.Currency.String(),
			Quantity:      quantity,
			AddedAt:       s.now().UTC(),
		})
	}

	if err := s.save(ctx, records); err != nil {
		return domain.Cart{}, fmt.Errorf("save: %w", err)
	}

	return mapItemRecordsToDomain(records)
}

func (s *cartStore) Remove(ctx context.Context, itemID, customization string) (domain.Cart, error) {
	records, err := s.load(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load: %w", err)
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.ItemID == itemID && rec.Customization == customization {
			continue
		}
		kept = append(kept, rec)
	}

	if err := s.save(ctx, kept); err != nil {
		return domain.Cart{}, fmt.Errorf("save: %w", err)
	}

	return mapItemRecordsToDomain(kept)
}

func (s *cartStore) SetQuantity(ctx context.Context, itemID, customization string, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return s.Remove(ctx, itemID, customization)
	}

	records, err := s.load(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load: %w", err)
	}

	// An absent line is left absent; only Add creates lines.
	if idx := findRecord(records, itemID, customization); idx >= 0 {
		records[idx].Quantity = quantity
	}

	if err := s.save(ctx, records); err != nil {
		return domain.Cart{}, fmt.Errorf("save: %w", err)
	}

	return mapItemRecordsToDomain(records)
}

func (s *cartStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("kv.Delete: %w", err)
	}
	return nil
}

func (s *cartStore) Total(ctx context.Context) (domain.Money, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return domain.Money{}, err
	}
	return cart.Total(), nil
}

func (s *cartStore) Count(ctx context.Context) (int, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

// load reads the whole stored cart. A missing or undecodable value is
// treated as an empty cart so a corrupt store never wedges the UI.
func (s *cartStore) load(ctx context.Context) ([]cartItemRecord, error) {
	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("kv.Get: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var records []cartItemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil
	}

	return records, nil
}

func (s *cartStore) save(ctx context.Context, records []cartItemRecord) error {
	if records == nil {
		records = []cartItemRecord{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("kv.Set: %w", err)
	}

	return nil
}

func findRecord(records []cartItemRecord, itemID, customization string) int {
	for i, rec := range records {
		if rec.ItemID == itemID && rec.Customization == customization {
			return i
		}
	}
	return -1
}

func mapItemRecordToDomain(rec cartItemRecord) (domain.CartLineItem, error) {
	parsedCurrency, err := currency.ParseISO(rec.PriceCurrency)
	if err != nil {
		return domain.CartLineItem{}, fmt.Errorf("currency[%s] is not valid: %w", rec.PriceCurrency, err)
	}

	return domain.CartLineItem{
		ItemID:        rec.ItemID,
		Customization: rec.Customization,
		UnitPrice:     domain.Money{Amount: rec.PriceAmount, Currency: parsedCurrency},
		Quantity:      rec.Quantity,
		AddedAt:       rec.AddedAt,
	}, nil
}

func mapItemRecordsToDomain(records []cartItemRecord) (domain.Cart, error) {
	var items []domain.CartLineItem

	for _, rec := range records {
		item, err := mapItemRecordToDomain(rec)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("mapItemRecordToDomain: %w", err)
		}

		items = append(items, item)
	}

	return domain.Cart{Items: items}, nil
}
