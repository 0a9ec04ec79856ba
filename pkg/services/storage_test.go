package services

import (
	"errors"
	"sync"
)

// memStorage is an in-memory Storage for store tests.
type memStorage struct {
	mu     sync.Mutex
	values map[string][]byte
	broken bool
}

func newMemStorage() *memStorage {
	return &memStorage{values: map[string][]byte{}}
}

func (m *memStorage) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.broken {
		return nil, false, errors.New("storage unavailable")
	}
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memStorage) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.broken {
		return errors.New("storage unavailable")
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *memStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.broken {
		return errors.New("storage unavailable")
	}
	delete(m.values, key)
	return nil
}

func (m *memStorage) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok
}

func (m *memStorage) raw(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

// recorder collects notifier output.
type recorder struct {
	titles   []string
	messages []string
}

func (r *recorder) notifier() Notifier {
	return func(title, message string) {
		r.titles = append(r.titles, title)
		r.messages = append(r.messages, message)
	}
}
