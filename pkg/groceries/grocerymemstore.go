package groceries

import (
	"context"
	"sync"
)

// InMemoryStore is a thread-safe, in-memory implementation of the Store
// interface, used for unit tests and local runs.
type InMemoryStore struct {
	sync.Mutex
	items map[string]Item
}

// NewInMemoryStore creates a new in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		items: make(map[string]Item),
	}
}

func memKey(item Item) string {
	return item.UserID + "\x00" + item.Name
}

// Add inserts the item if absent, or returns ErrItemExists. The check and
// insert happen under one lock, matching the conditional-write contract.
func (s *InMemoryStore) Add(_ context.Context, item Item) error {
	s.Lock()
	defer s.Unlock()

	key := memKey(item)
	if _, ok := s.items[key]; ok {
		return ErrItemExists
	}
	s.items[key] = item
	return nil
}

// Remove deletes the item if present, or returns ErrItemNotFound.
func (s *InMemoryStore) Remove(_ context.Context, item Item) error {
	s.Lock()
	defer s.Unlock()

	key := memKey(item)
	if _, ok := s.items[key]; !ok {
		return ErrItemNotFound
	}
	delete(s.items, key)
	return nil
}

// ListByUser retrieves every item belonging to the given user. Map iteration
// order makes the result order deliberately unstable, like a real scan.
func (s *InMemoryStore) ListByUser(_ context.Context, userID string) ([]Item, error) {
	s.Lock()
	defer s.Unlock()

	var results []Item
	for _, item := range s.items {
		if item.UserID == userID {
			results = append(results, item)
		}
	}
	return results, nil
}
