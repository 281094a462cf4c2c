package cart

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/ir7shop/football-shop-backend/internal/jsonstore"
)

var ErrKeyNotFound = errors.New("key not found")

// KV is the durable key-value storage the shopper's device keeps cart,
// wishlist and session state in. It survives restarts but is never shared
// across devices.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// MemoryKV is an in-memory KV for tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte{}, value...)
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// FileKV stores all keys in one JSON document on disk.
type FileKV struct {
	mu   sync.Mutex
	file *jsonstore.File
}

func NewFileKV(file *jsonstore.File) *FileKV {
	return &FileKV{file: file}
}

func (f *FileKV) Get(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return nil, err
	}
	value, ok := data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return value, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	data[key] = json.RawMessage(value)
	return f.file.Save(data)
}

func (f *FileKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	delete(data, key)
	return f.file.Save(data)
}

func (f *FileKV) load() (map[string]json.RawMessage, error) {
	data := make(map[string]json.RawMessage)
	if err := f.file.Load(&data); err != nil {
		return nil, err
	}
	return data, nil
}
