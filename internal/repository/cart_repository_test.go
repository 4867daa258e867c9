package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"

	"github.com/hashtagbbq/tableside/internal/domain"
	"github.com/hashtagbbq/tableside/internal/kv"
	"github.com/hashtagbbq/tableside/internal/port"
	"github.com/hashtagbbq/tableside/internal/repository"
)

type cartStoreSuite struct {
	suite.Suite

	store port.CartStore
	kv    *kv.Memory
}

// entry point to run the tests in the suite
func TestCartStoreSuite(t *testing.T) {
	suite.Run(t, new(cartStoreSuite))
}

// before each test: a fresh store, nothing carries over
func (suite *cartStoreSuite) SetupTest() {
	suite.kv = kv.NewMemory()
	suite.store = repository.NewCart(suite.kv)
}

func (suite *cartStoreSuite) TestAdd() {
	tests := []struct {
		name      string
		item      domain.CartLineItem
		quantity  int
		wantError error
	}{
		{
			name:     "add item to cart: ok",
			item:     randomLineItem(),
			quantity: 1,
		},
		{
			name:     "add item with customization: ok",
			item:     withCustomization(randomLineItem(), "extra spicy"),
			quantity: 2,
		},
		{
			name:      "add item with zero quantity: error",
			item:      randomLineItem(),
			quantity:  0,
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "add item with negative quantity: error",
			item:      randomLineItem(),
			quantity:  -3,
			wantError: domain.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			cart, err := suite.store.Add(ctx, tt.item, tt.quantity)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			idx := cart.Find(tt.item.ItemID, tt.item.Customization)
			require.GreaterOrEqual(t, idx, 0)

			want := tt.item
			want.Quantity = tt.quantity
			assertLineItem(t, want, cart.Items[idx])
		})
	}
}

func (suite *cartStoreSuite) TestAddAccumulatesQuantity() {
	t := suite.T()
	ctx := t.Context()

	item := randomLineItem()

	_, err := suite.store.Add(ctx, item, 2)
	require.NoError(t, err)

	cart, err := suite.store.Add(ctx, item, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func (suite *cartStoreSuite) TestAddKeepsCustomizationsDistinct() {
	t := suite.T()
	ctx := t.Context()

	item := randomLineItem()

	_, err := suite.store.Add(ctx, item, 1)
	require.NoError(t, err)

	cart, err := suite.store.Add(ctx, withCustomization(item, "less oil"), 1)
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, cart.Items[0].ItemID, cart.Items[1].ItemID)
	assert.NotEqual(t, cart.Items[0].Customization, cart.Items[1].Customization)
}

func (suite *cartStoreSuite) TestRemove() {
	t := suite.T()
	ctx := t.Context()

	first := randomLineItem()
	second := randomLineItem()

	_, err := suite.store.Add(ctx, first, 1)
	require.NoError(t, err)
	_, err = suite.store.Add(ctx, second, 1)
	require.NoError(t, err)

	cart, err := suite.store.Remove(ctx, first.ItemID, first.Customization)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, second.ItemID, cart.Items[0].ItemID)

	// Removing a line that is not there is a no-op, not an error.
	cart, err = suite.store.Remove(ctx, gofakeit.UUID(), "")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func (suite *cartStoreSuite) TestSetQuantity() {
	t := suite.T()
	ctx := t.Context()

	item := randomLineItem()

	_, err := suite.store.Add(ctx, item, 1)
	require.NoError(t, err)

	cart, err := suite.store.SetQuantity(ctx, item.ItemID, item.Customization, 4)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func (suite *cartStoreSuite) TestSetQuantityZeroRemoves() {
	t := suite.T()
	ctx := t.Context()

	item := randomLineItem()

	_, err := suite.store.Add(ctx, item, 2)
	require.NoError(t, err)

	cart, err := suite.store.SetQuantity(ctx, item.ItemID, item.Customization, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func (suite *cartStoreSuite) TestSetQuantityAbsentIsNoop() {
	t := suite.T()
	ctx := t.Context()

	item := randomLineItem()

	_, err := suite.store.Add(ctx, item, 2)
	require.NoError(t, err)

	cart, err := suite.store.SetQuantity(ctx, gofakeit.UUID(), "", 7)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func (suite *cartStoreSuite) TestTotalsAndCount() {
	t := suite.T()
	ctx := t.Context()

	total, err := suite.store.Total(ctx)
	require.NoError(t, err)
	assert.Zero(t, total.Amount)

	count, err := suite.store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	first := randomLineItem()
	first.UnitPrice = domain.Money{Amount: 100, Currency: inr}
	second := randomLineItem()
	second.UnitPrice = domain.Money{Amount: 50, Currency: inr}

	_, err = suite.store.Add(ctx, first, 2)
	require.NoError(t, err)
	_, err = suite.store.Add(ctx, second, 1)
	require.NoError(t, err)

	total, err = suite.store.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(250), total.Amount)
	assert.Equal(t, "INR", total.Currency.String())

	count, err = suite.store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func (suite *cartStoreSuite) TestClear() {
	t := suite.T()
	ctx := t.Context()

	_, err := suite.store.Add(ctx, randomLineItem(), 3)
	require.NoError(t, err)

	require.NoError(t, suite.store.Clear(ctx))

	cart, err := suite.store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func (suite *cartStoreSuite) TestCorruptValueReadsAsEmpty() {
	t := suite.T()
	ctx := t.Context()

	require.NoError(t, suite.kv.Set(ctx, kv.KeyCart, []byte("{not a cart")))

	cart, err := suite.store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// The store stays usable after the fallback.
	cart, err = suite.store.Add(ctx, randomLineItem(), 1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func (suite *cartStoreSuite) TestInsertionOrderSurvivesReload() {
	t := suite.T()
	ctx := t.Context()

	items := []domain.CartLineItem{randomLineItem(), randomLineItem(), randomLineItem()}
	for _, item := range items {
		_, err := suite.store.Add(ctx, item, 1)
		require.NoError(t, err)
	}

	// A second store over the same KV sees the same order.
	reloaded, err := repository.NewCart(suite.kv).Get(ctx)
	require.NoError(t, err)

	require.Len(t, reloaded.Items, len(items))
	for i, item := range items {
		assert.Equal(t, item.ItemID, reloaded.Items[i].ItemID)
	}
}

func withCustomization(item domain.CartLineItem, customization string) domain.CartLineItem {
	item.Customization = customization
	return item
}

func assertLineItem(t *testing.T, expected, actual domain.CartLineItem) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	// Ignore AddedAt, the store stamps it
	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartLineItem{}, "AddedAt"),
		currencyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.AddedAt.IsZero())
}
