package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ir7shop/football-shop-backend/internal/config"
	"github.com/ir7shop/football-shop-backend/internal/product"
)

var testShipping = config.ShippingSchedule{FreeThreshold: 3000, FlatFee: 110}

func newTestCart() (*Cart, *RecordingNotifier) {
	notifier := &RecordingNotifier{}
	return New(NewMemoryKV(), notifier, testShipping), notifier
}

func jersey() product.Product {
	return product.Product{
		ID:       1,
		Name:     "Manchester United Home Jersey 2024",
		Price:    1299,
		Category: "jerseys",
		Sizes:    []string{"S", "M", "L"},
		HasSizes: true,
		Stock:    3,
	}
}

func ball() product.Product {
	return product.Product{
		ID:       8,
		Name:     "Adidas Champions League Ball",
		Price:    1999,
		Category: "balls",
		Stock:    25,
	}
}

func TestAddItem_DefaultsSize(t *testing.T) {
	c, _ := newTestCart()

	require.NoError(t, c.AddItem(jersey(), ""))
	require.NoError(t, c.AddItem(ball(), ""))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "S", items[0].SelectedSize)
	assert.Equal(t, DefaultSize, items[1].SelectedSize)
}

func TestAddItem_MergesSameProductAndSize(t *testing.T) {
	c, _ := newTestCart()

	require.NoError(t, c.AddItem(jersey(), "M"))
	require.NoError(t, c.AddItem(jersey(), "M"))
	require.NoError(t, c.AddItem(jersey(), "L"))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "M", items[0].SelectedSize)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, "L", items[1].SelectedSize)
}

func TestAddItem_RefusesOutOfStock(t *testing.T) {
	c, notifier := newTestCart()

	p := jersey()
	p.Stock = 0
	require.NoError(t, c.AddItem(p, "M"))

	assert.Empty(t, c.Items())
	require.Len(t, notifier.Notices, 1)
	assert.Equal(t, NoticeError, notifier.Notices[0].Level)
}

func TestAddItem_CapsAtStock(t *testing.T) {
	c, notifier := newTestCart()

	p := jersey() // stock 3
	for i := 0; i < 5; i++ {
		require.NoError(t, c.AddItem(p, "M"))
	}

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, p.Stock, items[0].Quantity)

	warned := false
	for _, n := range notifier.Notices {
		if n.Level == NoticeWarning {
			warned = true
		}
	}
	assert.True(t, warned, "expected a stock warning")
}

func TestUpdateQuantity_Clamps(t *testing.T) {
	c, _ := newTestCart()
	require.NoError(t, c.AddItem(jersey(), "M"))

	require.NoError(t, c.UpdateQuantity(1, "M", 99))
	assert.Equal(t, 3, c.Items()[0].Quantity, "above stock clamps to stock")

	require.NoError(t, c.UpdateQuantity(1, "M", 0))
	assert.Equal(t, 1, c.Items()[0].Quantity, "below one clamps to one")

	require.NoError(t, c.UpdateQuantity(1, "M", -7))
	assert.Equal(t, 1, c.Items()[0].Quantity)

	require.NoError(t, c.UpdateQuantity(1, "M", 2))
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestUpdateQuantity_MissingItemOnlyNotifies(t *testing.T) {
	c, notifier := newTestCart()
	require.NoError(t, c.AddItem(jersey(), "M"))

	require.NoError(t, c.UpdateQuantity(42, "M", 2))

	assert.Equal(t, 1, c.Items()[0].Quantity)
	last := notifier.Notices[len(notifier.Notices)-1]
	assert.Equal(t, NoticeError, last.Level)
}

func TestRemoveItem_MatchesIDAndSize(t *testing.T) {
	c, _ := newTestCart()
	require.NoError(t, c.AddItem(jersey(), "M"))
	require.NoError(t, c.AddItem(jersey(), "L"))

	require.NoError(t, c.RemoveItem(1, "M"))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "L", items[0].SelectedSize)
}

func TestRemoveItem_NonexistentIsNoop(t *testing.T) {
	c, _ := newTestCart()
	require.NoError(t, c.AddItem(jersey(), "M"))

	before := c.Items()
	require.NoError(t, c.RemoveItem(1, "XL"))
	require.NoError(t, c.RemoveItem(99, "M"))

	assert.Equal(t, before, c.Items())
}

func TestComputeTotals_Invariant(t *testing.T) {
	cases := []struct {
		name        string
		items       []Item
		subtotal    int
		shippingFee int
	}{
		{
			name:        "below threshold pays flat fee",
			items:       []Item{{Product: product.Product{ID: 1, Price: 1299}, Quantity: 1, SelectedSize: "M"}},
			subtotal:    1299,
			shippingFee: 110,
		},
		{
			name: "at or above threshold ships free",
			items: []Item{
				{Product: product.Product{ID: 1, Price: 1600}, Quantity: 2, SelectedSize: "M"},
			},
			subtotal:    3200,
			shippingFee: 0,
		},
		{
			name:        "empty cart",
			items:       nil,
			subtotal:    0,
			shippingFee: 110,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := ComputeTotals(tc.items, testShipping)
			assert.Equal(t, tc.subtotal, totals.Subtotal)
			assert.Equal(t, tc.shippingFee, totals.ShippingFee)
			assert.Equal(t, totals.Subtotal+totals.ShippingFee, totals.Total)
		})
	}
}

func TestCart_PersistsAcrossInstances(t *testing.T) {
	kv := NewMemoryKV()
	notifier := &RecordingNotifier{}

	first := New(kv, notifier, testShipping)
	require.NoError(t, first.AddItem(jersey(), "M"))

	second := New(kv, notifier, testShipping)
	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCart_BadgeRefreshOnMutation(t *testing.T) {
	c, _ := newTestCart()
	var badge int
	c.SetOnChange(func(count int) { badge = count })

	require.NoError(t, c.AddItem(jersey(), "M"))
	require.NoError(t, c.AddItem(jersey(), "M"))
	assert.Equal(t, 2, badge)

	require.NoError(t, c.Clear())
	assert.Equal(t, 0, badge)
}

func TestWishlist_AddRemoveContains(t *testing.T) {
	w := NewWishlist(NewMemoryKV())

	require.NoError(t, w.Add(jersey()))
	require.NoError(t, w.Add(jersey())) // duplicate keeps one entry
	require.NoError(t, w.Add(ball()))

	assert.Len(t, w.List(), 2)
	assert.True(t, w.Contains(1))

	require.NoError(t, w.Remove(1))
	assert.False(t, w.Contains(1))
	require.NoError(t, w.Remove(1)) // no-op
	assert.Len(t, w.List(), 1)
}
