package groceries

import (
	"context"
	"errors"
)

// Sentinel errors for the two business-rule outcomes the handlers speak back
// to the user. Store implementations must return these (possibly wrapped) so
// callers can branch with errors.Is.
var (
	// ErrItemExists is returned by Add when an item with the same
	// (name, user) identity is already stored.
	ErrItemExists = errors.New("grocery item already exists")

	// ErrItemNotFound is returned by Remove when no item with the given
	// (name, user) identity is stored.
	ErrItemNotFound = errors.New("grocery item not found")
)

// Store is the interface for persisting grocery items.
// This decouples the service from the database implementation.
//
// Add and Remove are conditional: an implementation must make the
// existence check and the write a single atomic operation, so two
// concurrent turns cannot both pass the check.
type Store interface {
	// Add inserts the item if absent, or returns ErrItemExists.
	Add(ctx context.Context, item Item) error
	// Remove deletes the item if present, or returns ErrItemNotFound.
	Remove(ctx context.Context, item Item) error
	// ListByUser retrieves every item belonging to the given user, in no
	// particular order.
	ListByUser(ctx context.Context, userID string) ([]Item, error)
}
