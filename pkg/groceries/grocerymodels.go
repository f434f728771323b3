// Package groceries holds the grocery list domain: the persisted item model,
// the store contract, and the service the intent handlers consume.
package groceries

// Item is the only persisted entity. The pair (Name, UserID) is its identity;
// there is no quantity, timestamp, or update operation. An item is created by
// a successful add and destroyed by a successful remove, never mutated.
type Item struct {
	Name   string
	UserID string
}
