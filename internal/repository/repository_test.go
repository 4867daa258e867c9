package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"

	"github.com/hashtagbbq/tableside/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var inr = currency.MustParseISO("INR")

func randomLineItem() domain.CartLineItem {
	return domain.CartLineItem{
		ItemID:    gofakeit.UUID(),
		UnitPrice: randomPrice(),
	}
}

func randomPrice() domain.Money {
	// Menu prices are whole rupees, stored in paise.
	return domain.Money{
		Amount:   int64(gofakeit.Number(30, 400)) * 100,
		Currency: inr,
	}
}
