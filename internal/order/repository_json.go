package order

import (
	"sync"

	"github.com/ir7shop/football-shop-backend/internal/jsonstore"
)

// JSONRepository persists orders as one JSON array file rewritten in full on
// every mutation.
type JSONRepository struct {
	mu     sync.RWMutex
	file   *jsonstore.File
	orders []Order
}

func NewJSONRepository(file *jsonstore.File) (*JSONRepository, error) {
	r := &JSONRepository{file: file, orders: []Order{}}
	if err := file.Load(&r.orders); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JSONRepository) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *JSONRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *JSONRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := append(append([]Order{}, r.orders...), ord)
	if err := r.file.Save(updated); err != nil {
		return Order{}, err
	}
	r.orders = updated
	return ord, nil
}

func (r *JSONRepository) UpdateStatus(id, status, updatedAt string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			updated := make([]Order, len(r.orders))
			copy(updated, r.orders)
			updated[i].Status = status
			updated[i].UpdatedAt = updatedAt
			if err := r.file.Save(updated); err != nil {
				return Order{}, err
			}
			r.orders = updated
			return updated[i], nil
		}
	}
	return Order{}, ErrNotFound
}
