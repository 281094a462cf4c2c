package product

import (
	"sync"

	"github.com/ir7shop/football-shop-backend/internal/jsonstore"
)

// JSONRepository persists the whole catalog as one JSON array file. The file
// is read once at construction and rewritten in full on every mutation.
type JSONRepository struct {
	mu      sync.RWMutex
	file    *jsonstore.File
	storage []Product
	nextID  int
}

// NewJSONRepository loads the catalog from file. When the file does not exist
// yet the seed list is written out, so a fresh deployment starts with data.
func NewJSONRepository(file *jsonstore.File, seed []Product) (*JSONRepository, error) {
	r := &JSONRepository{file: file, storage: []Product{}}

	if !file.Exists() && len(seed) > 0 {
		r.storage = append(r.storage, seed...)
		if err := file.Save(r.storage); err != nil {
			return nil, err
		}
	} else if err := file.Load(&r.storage); err != nil {
		return nil, err
	}

	maxID := 0
	for _, p := range r.storage {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	r.nextID = maxID + 1
	return r, nil
}

func (r *JSONRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *JSONRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *JSONRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	} else if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}

	updated := append(append([]Product{}, r.storage...), p)
	if err := r.file.Save(updated); err != nil {
		return Product{}, err
	}
	r.storage = updated
	return p, nil
}

func (r *JSONRepository) Update(id int, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			updated := make([]Product, len(r.storage))
			copy(updated, r.storage)
			updated[i] = p
			if err := r.file.Save(updated); err != nil {
				return Product{}, err
			}
			r.storage = updated
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *JSONRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].ID == id {
			updated := append(append([]Product{}, r.storage[:i]...), r.storage[i+1:]...)
			if err := r.file.Save(updated); err != nil {
				return err
			}
			r.storage = updated
			return nil
		}
	}
	return ErrNotFound
}
