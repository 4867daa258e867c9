package port

import (
	"context"

	"github.com/hashtagbbq/tableside/internal/domain"
)

// CartStore owns the persisted cart. Every mutation reads the whole stored
// cart, applies the change and writes it back, returning the updated cart.
type CartStore interface {
	Get(ctx context.Context) (domain.Cart, error)

	// Add merges the item into an existing line with the same
	// (ItemID, Customization) pair by incrementing its quantity, or appends
	// a new line. Quantities below 1 are rejected with ErrInvalidQuantity.
	Add(ctx context.Context, item domain.CartLineItem, quantity int) (domain.Cart, error)

	// Remove drops the matching line. Removing an absent line is a no-op.
	Remove(ctx context.Context, itemID, customization string) (domain.Cart, error)

	// SetQuantity overwrites the matching line's quantity. A quantity of
	// zero or less removes the line. Setting an absent line is a no-op.
	SetQuantity(ctx context.Context, itemID, customization string, quantity int) (domain.Cart, error)

	Clear(ctx context.Context) error
	Total(ctx context.Context) (domain.Money, error)
	Count(ctx context.Context) (int, error)
}
