package user

import (
	"strings"
	"sync"

	"github.com/ir7shop/football-shop-backend/internal/jsonstore"
)

// JSONRepository persists users as one JSON array file rewritten in full on
// every mutation.
type JSONRepository struct {
	mu     sync.RWMutex
	file   *jsonstore.File
	users  []User
	nextID int
}

func NewJSONRepository(file *jsonstore.File) (*JSONRepository, error) {
	r := &JSONRepository{file: file, users: []User{}}
	if err := file.Load(&r.users); err != nil {
		return nil, err
	}

	maxID := 0
	for _, user := range r.users {
		if user.ID > maxID {
			maxID = user.ID
		}
	}
	r.nextID = maxID + 1
	return r, nil
}

func (r *JSONRepository) List() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, len(r.users))
	copy(users, r.users)
	return users
}

func (r *JSONRepository) GetByID(id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *JSONRepository) GetByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *JSONRepository) Create(user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	} else if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}

	updated := append(append([]User{}, r.users...), user)
	if err := r.file.Save(updated); err != nil {
		return User{}, err
	}
	r.users = updated
	return user, nil
}

func (r *JSONRepository) Update(id int, userUpdate User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID == id {
			userUpdate.ID = id
			if userUpdate.Password == "" {
				userUpdate.Password = user.Password
			}
			updated := make([]User, len(r.users))
			copy(updated, r.users)
			updated[i] = userUpdate
			if err := r.file.Save(updated); err != nil {
				return User{}, err
			}
			r.users = updated
			return userUpdate, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *JSONRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID == id {
			updated := append(append([]User{}, r.users[:i]...), r.users[i+1:]...)
			if err := r.file.Save(updated); err != nil {
				return err
			}
			r.users = updated
			return nil
		}
	}
	return ErrNotFound
}

func (r *JSONRepository) AppendOrderSummary(email string, summary OrderSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			updated := make([]User, len(r.users))
			copy(updated, r.users)
			user.Orders = append(append([]OrderSummary{}, user.Orders...), summary)
			updated[i] = user
			if err := r.file.Save(updated); err != nil {
				return err
			}
			r.users = updated
			return nil
		}
	}
	return ErrNotFound
}
