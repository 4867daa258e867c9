package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money holds an amount in minor currency units (paise for INR).
type Money struct {
	Amount   int64
	Currency currency.Unit
}

// Decimal converts the minor-unit amount to major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Amount, -2)
}

// Mul scales the amount by a quantity, keeping the currency.
func (m Money) Mul(quantity int64) Money {
	return Money{Amount: m.Amount * quantity, Currency: m.Currency}
}

func (m Money) String() string {
	return fmt.Sprintf("%v %s", m.Currency, m.Decimal().StringFixed(2))
}
