package groceries

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Service provides the business logic for managing a user's grocery list.
type Service struct {
	store Store
}

// NewService is the constructor for the groceries Service. It takes a Store,
// allowing us to switch between in-memory, database, or mock stores.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// AddItem stores a new grocery item for the user. It returns ErrItemExists
// when the user already has an item of that name.
func (s *Service) AddItem(ctx context.Context, userID, name string) error {
	if userID == "" || name == "" {
		return fmt.Errorf("user ID and item name cannot be empty")
	}

	if err := s.store.Add(ctx, Item{Name: name, UserID: userID}); err != nil {
		if errors.Is(err, ErrItemExists) {
			return err
		}
		return fmt.Errorf("failed to save grocery item: %w", err)
	}
	return nil
}

// RemoveItem deletes a grocery item from the user's list. It returns
// ErrItemNotFound when the user has no item of that name.
func (s *Service) RemoveItem(ctx context.Context, userID, name string) error {
	if userID == "" || name == "" {
		return fmt.Errorf("user ID and item name cannot be empty")
	}

	if err := s.store.Remove(ctx, Item{Name: name, UserID: userID}); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete grocery item: %w", err)
	}
	return nil
}

// ListItems retrieves all of the user's grocery items, sorted by name.
// Stores return items in whatever order their scan produces, so the sort
// here is what makes the spoken list stable across turns.
func (s *Service) ListItems(ctx context.Context, userID string) ([]Item, error) {
	items, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}
