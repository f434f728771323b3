// Package firestore provides persistent storage implementations using Google Cloud Firestore.
package firestore

import (
	"context"
	"fmt"
	"net/url"

	"cloud.google.com/go/firestore"
	"github.com/illmade-knight/grocery-list-skill/pkg/groceries"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// itemDocument is the private struct that is actually stored in Firestore.
type itemDocument struct {
	Name   string `firestore:"name"`
	UserID string `firestore:"userId"`
}

// GroceryStore is a concrete implementation of the groceries.Store interface
// using Firestore.
type GroceryStore struct {
	client     *firestore.Client
	collection *firestore.CollectionRef
}

// NewGroceryStore creates a new Firestore-backed store for grocery items.
func NewGroceryStore(client *firestore.Client) *GroceryStore {
	return &GroceryStore{
		client:     client,
		collection: client.Collection("groceries"),
	}
}

// docID derives the document ID from the item's composite identity.
// Both parts are escaped because Firestore document IDs cannot contain "/"
// and item names are free text.
func docID(item groceries.Item) string {
	return url.PathEscape(item.UserID) + "#" + url.PathEscape(item.Name)
}

// Add inserts the item if absent. Create is a conditional write, so two
// concurrent adds of the same item cannot both succeed.
func (s *GroceryStore) Add(ctx context.Context, item groceries.Item) error {
	_, err := s.collection.Doc(docID(item)).Create(ctx, itemDocument{
		Name:   item.Name,
		UserID: item.UserID,
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return groceries.ErrItemExists
		}
		return fmt.Errorf("failed to create grocery item document: %w", err)
	}
	return nil
}

// Remove deletes the item if present. The existence check and the delete run
// in one transaction so a concurrent remove cannot slip between them.
func (s *GroceryStore) Remove(ctx context.Context, item groceries.Item) error {
	docRef := s.collection.Doc(docID(item))
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return groceries.ErrItemNotFound
			}
			return fmt.Errorf("failed to read grocery item document: %w", err)
		}
		return tx.Delete(docRef)
	})
}

// ListByUser retrieves every item belonging to the given user.
func (s *GroceryStore) ListByUser(ctx context.Context, userID string) ([]groceries.Item, error) {
	iter := s.collection.Where("userId", "==", userID).Documents(ctx)
	var results []groceries.Item
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate grocery items: %w", err)
		}

		var idoc itemDocument
		if err := doc.DataTo(&idoc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal grocery item document: %w", err)
		}
		results = append(results, groceries.Item{Name: idoc.Name, UserID: idoc.UserID})
	}
	return results, nil
}
