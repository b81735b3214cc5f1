package agreement

import "sync"

// MessageStore records the first order received per relay path. Later
// arrivals for the same path never overwrite the stored value.
type MessageStore interface {
	// PutIfAbsent stores the order under the key if no value exists yet.
	// Returns true if the value was stored, false if the key was taken.
	PutIfAbsent(key string, order Order) bool
	// Get retrieves the stored order for the key.
	Get(key string) (Order, bool)
	// Len returns the number of stored paths.
	Len() int
	// Snapshot returns a copy of the full path -> order mapping.
	Snapshot() map[string]Order
}

// InMemoryStore is an in-memory implementation of MessageStore.
// It is thread-safe.
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string]Order
}

// NewInMemoryStore creates a new in-memory message store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		data: make(map[string]Order),
	}
}

// PutIfAbsent stores the order under the key, first write wins.
func (s *InMemoryStore) PutIfAbsent(key string, order Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; exists {
		return false
	}
	s.data[key] = order
	return true
}

// Get retrieves the stored order for the key.
func (s *InMemoryStore) Get(key string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.data[key]
	return order, ok
}

// Len returns the number of stored paths.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Snapshot returns a copy of the stored mapping.
func (s *InMemoryStore) Snapshot() map[string]Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Order, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}
