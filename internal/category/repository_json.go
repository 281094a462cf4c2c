package category

import (
	"sync"

	"github.com/ir7shop/football-shop-backend/internal/jsonstore"
)

// JSONRepository persists categories as one JSON array file rewritten in full
// on every mutation.
type JSONRepository struct {
	mu      sync.RWMutex
	file    *jsonstore.File
	storage []Category
	nextID  int
}

func NewJSONRepository(file *jsonstore.File, seed []Category) (*JSONRepository, error) {
	r := &JSONRepository{file: file, storage: []Category{}}

	if !file.Exists() && len(seed) > 0 {
		r.storage = append(r.storage, seed...)
		if err := file.Save(r.storage); err != nil {
			return nil, err
		}
	} else if err := file.Load(&r.storage); err != nil {
		return nil, err
	}

	maxID := 0
	for _, cat := range r.storage {
		if cat.ID > maxID {
			maxID = cat.ID
		}
	}
	r.nextID = maxID + 1
	return r, nil
}

func (r *JSONRepository) List() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *JSONRepository) GetByID(id int) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cat := range r.storage {
		if cat.ID == id {
			return cat, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *JSONRepository) Create(cat Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.storage {
		if existing.Name == cat.Name {
			return Category{}, ErrNameExists
		}
	}
	if cat.ID == 0 {
		cat.ID = r.nextID
		r.nextID++
	} else if cat.ID >= r.nextID {
		r.nextID = cat.ID + 1
	}

	updated := append(append([]Category{}, r.storage...), cat)
	if err := r.file.Save(updated); err != nil {
		return Category{}, err
	}
	r.storage = updated
	return cat, nil
}

func (r *JSONRepository) Update(id int, cat Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.storage {
		if existing.ID != id && existing.Name == cat.Name {
			return Category{}, ErrNameExists
		}
	}
	for i := range r.storage {
		if r.storage[i].ID == id {
			cat.ID = id
			updated := make([]Category, len(r.storage))
			copy(updated, r.storage)
			updated[i] = cat
			if err := r.file.Save(updated); err != nil {
				return Category{}, err
			}
			r.storage = updated
			return cat, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *JSONRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].ID == id {
			updated := append(append([]Category{}, r.storage[:i]...), r.storage[i+1:]...)
			if err := r.file.Save(updated); err != nil {
				return err
			}
			r.storage = updated
			return nil
		}
	}
	return ErrNotFound
}
