package cart

import (
	"encoding/json"

	"github.com/ir7shop/football-shop-backend/internal/product"
)

const wishlistKey = "wishlist"

// Wishlist is the saved-for-later list, persisted under its own key in the
// same device store as the cart.
type Wishlist struct {
	kv KV
}

func NewWishlist(kv KV) *Wishlist {
	return &Wishlist{kv: kv}
}

func (w *Wishlist) List() []product.Product {
	raw, err := w.kv.Get(wishlistKey)
	if err != nil {
		return []product.Product{}
	}
	var products []product.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return []product.Product{}
	}
	return products
}

func (w *Wishlist) Contains(productID int) bool {
	for _, p := range w.List() {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Add saves the product; adding a product twice keeps a single entry.
func (w *Wishlist) Add(p product.Product) error {
	if w.Contains(p.ID) {
		return nil
	}
	return w.save(append(w.List(), p))
}

// Remove is a no-op when the product is not saved.
func (w *Wishlist) Remove(productID int) error {
	products := w.List()
	kept := make([]product.Product, 0, len(products))
	for _, p := range products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return nil
	}
	return w.save(kept)
}

func (w *Wishlist) save(products []product.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return w.kv.Set(wishlistKey, raw)
}
