package domain

import (
	"errors"
	"time"
)

// ErrInvalidQuantity is returned when an operation receives a quantity below 1.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// CartLineItem is one (item, customization) pairing with a quantity.
// The empty customization string means "no customization".
type CartLineItem struct {
	ItemID        string
	Customization string
	UnitPrice     Money
	Quantity      int

	AddedAt time.Time
}

// Subtotal is the unit price multiplied by the quantity.
func (li CartLineItem) Subtotal() Money {
	return li.UnitPrice.Mul(int64(li.Quantity))
}

// Cart is an ordered sequence of line items. Insertion order is preserved and
// no two lines share the same (ItemID, Customization) pair.
type Cart struct {
	Items []CartLineItem
}

// Find returns the index of the line matching the (itemID, customization)
// pair, or -1 when no line matches.
func (c Cart) Find(itemID, customization string) int {
	for i, li := range c.Items {
		if li.ItemID == itemID && li.Customization == customization {
			return i
		}
	}
	return -1
}

// Total sums unit price times quantity over all lines. The menu is
// single-currency, so the first line's currency is kept; an empty cart
// totals to the zero Money value.
func (c Cart) Total() Money {
	var total Money
	for i, li := range c.Items {
		if i == 0 {
			total.Currency = li.UnitPrice.Currency
		}
		total.Amount += li.Subtotal().Amount
	}
	return total
}

// Count sums the quantities over all lines.
func (c Cart) Count() int {
	var count int
	for _, li := range c.Items {
		count += li.Quantity
	}
	return count
}
