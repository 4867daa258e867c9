// Package session keeps the ambient order-flow state the navigation screens
// write: how the customer wants to order and where. The values are opaque
// strings; the cart and reservation layers never interpret them.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hashtagbbq/tableside/internal/kv"
	"github.com/hashtagbbq/tableside/internal/port"
)

// Flow is the order-type selection: order type (dine-in, takeaway,
// delivery), the chosen outlet and the order mode (now or later).
type Flow struct {
	OrderType string
	OutletID  string
	Mode      string
}

type Manager struct {
	kv port.KV
}

func NewManager(store port.KV) *Manager {
	return &Manager{kv: store}
}

// SetFlow stores all three selections, the way the order-type screen
// commits them together.
func (m *Manager) SetFlow(ctx context.Context, flow Flow) error {
	pairs := map[string]string{
		kv.KeyOrderType:      flow.OrderType,
		kv.KeySelectedOutlet: flow.OutletID,
		kv.KeyOrderMode:      flow.Mode,
	}

	for key, value := range pairs {
		if err := m.kv.Set(ctx, key, []byte(value)); err != nil {
			return fmt.Errorf("kv.Set[%s]: %w", key, err)
		}
	}

	return nil
}

// Flow reads the stored selections. Missing keys read as empty strings.
func (m *Manager) Flow(ctx context.Context) (Flow, error) {
	orderType, err := m.get(ctx, kv.KeyOrderType)
	if err != nil {
		return Flow{}, err
	}
	outletID, err := m.get(ctx, kv.KeySelectedOutlet)
	if err != nil {
		return Flow{}, err
	}
	mode, err := m.get(ctx, kv.KeyOrderMode)
	if err != nil {
		return Flow{}, err
	}

	return Flow{OrderType: orderType, OutletID: outletID, Mode: mode}, nil
}

// ID returns the persistent session id, generating and storing one on
// first use.
func (m *Manager) ID(ctx context.Context) (string, error) {
	existing, err := m.get(ctx, kv.KeySessionID)
	if err != nil {
		return "", err
	}
	if existing != "" {
		return existing, nil
	}

	id := uuid.NewString()
	if err := m.kv.Set(ctx, kv.KeySessionID, []byte(id)); err != nil {
		return "", fmt.Errorf("kv.Set: %w", err)
	}

	return id, nil
}

func (m *Manager) get(ctx context.Context, key string) (string, error) {
	value, ok, err := m.kv.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("kv.Get[%s]: %w", key, err)
	}
	if !ok {
		return "", nil
	}
	return string(value), nil
}
