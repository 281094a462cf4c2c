package cart

import (
	"encoding/json"
	"fmt"

	"github.com/ir7shop/football-shop-backend/internal/config"
	"github.com/ir7shop/football-shop-backend/internal/product"
)

const cartKey = "cart"

// DefaultSize is assigned when a product has no size options.
const DefaultSize = "Standard"

// Item is a cart line: a product snapshot plus quantity and the chosen size.
// Identity is (product id, selectedSize) — the same product in two sizes is
// two distinct lines.
type Item struct {
	product.Product
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selectedSize"`
}

// Totals is the computed cart summary.
type Totals struct {
	Subtotal    int `json:"subtotal"`
	ShippingFee int `json:"shippingFee"`
	Total       int `json:"total"`
}

// ComputeTotals derives the order summary for a set of cart lines.
func ComputeTotals(items []Item, shipping config.ShippingSchedule) Totals {
	subtotal := 0
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}
	fee := shipping.Fee(subtotal)
	return Totals{Subtotal: subtotal, ShippingFee: fee, Total: subtotal + fee}
}

// Cart is the shopper's pending order, persisted to the device's KV store on
// every mutation so it survives reloads.
type Cart struct {
	kv       KV
	notifier Notifier
	shipping config.ShippingSchedule
	onChange func(count int)
}

func New(kv KV, notifier Notifier, shipping config.ShippingSchedule) *Cart {
	return &Cart{kv: kv, notifier: notifier, shipping: shipping}
}

// SetOnChange registers the badge-count refresh invoked after every mutation.
func (c *Cart) SetOnChange(fn func(count int)) {
	c.onChange = fn
}

// Items loads the current cart lines. A missing or unreadable store yields an
// empty cart rather than an error, matching how the storefront treats it.
func (c *Cart) Items() []Item {
	raw, err := c.kv.Get(cartKey)
	if err != nil {
		return []Item{}
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return []Item{}
	}
	return items
}

// Count is the badge number: the sum of line quantities.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items() {
		count += item.Quantity
	}
	return count
}

// Totals computes the current order summary.
func (c *Cart) Totals() Totals {
	return ComputeTotals(c.Items(), c.shipping)
}

// AddItem puts one unit of the product in the cart. Out-of-stock products are
// refused with a warning. An existing line with the same (id, size) is
// incremented, capped at the available stock. The size defaults to the first
// listed size, or "Standard" for sizeless products.
func (c *Cart) AddItem(p product.Product, selectedSize string) error {
	if !p.InStock() {
		c.notifier.Notify(NoticeError, "This product is out of stock")
		return nil
	}

	size := selectedSize
	if size == "" {
		if p.HasSizes && len(p.Sizes) > 0 {
			size = p.Sizes[0]
		} else {
			size = DefaultSize
		}
	}

	items := c.Items()
	merged := false
	for i := range items {
		if items[i].ID == p.ID && items[i].SelectedSize == size {
			if items[i].Quantity >= p.Stock {
				c.notifier.Notify(NoticeWarning, fmt.Sprintf("Only %d items available in stock", p.Stock))
				return nil
			}
			items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, Item{Product: p, Quantity: 1, SelectedSize: size})
	}

	if err := c.save(items); err != nil {
		return err
	}
	c.notifier.Notify(NoticeSuccess, fmt.Sprintf("%s (%s) added to cart!", p.Name, size))
	return nil
}

// UpdateQuantity sets a line's quantity, clamped to [1, stock]. Requests
// above stock are limited with a warning; below 1 they snap to 1. A missing
// line only raises an error notice.
func (c *Cart) UpdateQuantity(productID int, size string, quantity int) error {
	items := c.Items()

	found := false
	for i := range items {
		if items[i].ID == productID && items[i].SelectedSize == size {
			if quantity < 1 {
				quantity = 1
			}
			if quantity > items[i].Stock {
				c.notifier.Notify(NoticeWarning, fmt.Sprintf("Only %d items available in stock. Quantity limited.", items[i].Stock))
				quantity = items[i].Stock
			}
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		c.notifier.Notify(NoticeError, "Product not found in cart.")
		return nil
	}

	return c.save(items)
}

// RemoveItem deletes the matching line. Removing a line that is not there is
// a no-op.
func (c *Cart) RemoveItem(productID int, size string) error {
	items := c.Items()
	kept := make([]Item, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == productID && item.SelectedSize == size {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil
	}

	if err := c.save(kept); err != nil {
		return err
	}
	c.notifier.Notify(NoticeSuccess, "Item removed from cart.")
	return nil
}

// Clear empties the cart, as happens after a successful order.
func (c *Cart) Clear() error {
	if err := c.kv.Delete(cartKey); err != nil {
		return err
	}
	c.refreshBadge()
	return nil
}

func (c *Cart) save(items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := c.kv.Set(cartKey, raw); err != nil {
		return err
	}
	c.refreshBadge()
	return nil
}

func (c *Cart) refreshBadge() {
	if c.onChange != nil {
		c.onChange(c.Count())
	}
}
