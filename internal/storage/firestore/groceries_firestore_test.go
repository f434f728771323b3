//go:build integration

package firestore_test

import (
	"context"
	"testing"

	"cloud.google.com/go/firestore"
	fst "github.com/illmade-knight/grocery-list-skill/internal/storage/firestore"
	"github.com/illmade-knight/grocery-list-skill/pkg/groceries"
	"github.com/illmade-knight/go-test/emulators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGroceriesTest(t *testing.T) (context.Context, *fst.GroceryStore) {
	t.Helper()
	ctx := context.Background()
	fsConn := emulators.SetupFirestoreEmulator(t, ctx, emulators.GetDefaultFirestoreConfig("test-project"))
	fsClient, err := firestore.NewClient(ctx, "test-project", fsConn.ClientOptions...)
	require.NoError(t, err)

	store := fst.NewGroceryStore(fsClient)
	require.NotNil(t, store)

	t.Cleanup(func() {
		fsClient.Close()
	})
	return ctx, store
}

func TestGroceryStore(t *testing.T) {
	ctx, store := setupGroceriesTest(t)

	milk := groceries.Item{Name: "milk", UserID: "user-alice"}
	eggs := groceries.Item{Name: "eggs", UserID: "user-alice"}
	bobsMilk := groceries.Item{Name: "milk", UserID: "user-bob"}

	// Act: Add items for two users
	require.NoError(t, store.Add(ctx, milk))
	require.NoError(t, store.Add(ctx, eggs))
	require.NoError(t, store.Add(ctx, bobsMilk))

	t.Run("Add duplicate is rejected", func(t *testing.T) {
		err := store.Add(ctx, milk)
		require.ErrorIs(t, err, groceries.ErrItemExists)
	})

	t.Run("List filters by user", func(t *testing.T) {
		results, err := store.ListByUser(ctx, "user-alice")
		require.NoError(t, err)
		assert.ElementsMatch(t, []groceries.Item{milk, eggs}, results)
	})

	t.Run("List for unknown user is empty", func(t *testing.T) {
		results, err := store.ListByUser(ctx, "user-charlie")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Remove missing item is rejected", func(t *testing.T) {
		err := store.Remove(ctx, groceries.Item{Name: "butter", UserID: "user-alice"})
		require.ErrorIs(t, err, groceries.ErrItemNotFound)
	})

	t.Run("Remove existing item", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, milk))

		results, err := store.ListByUser(ctx, "user-alice")
		require.NoError(t, err)
		assert.ElementsMatch(t, []groceries.Item{eggs}, results)

		// Bob's identically named item is untouched.
		bobResults, err := store.ListByUser(ctx, "user-bob")
		require.NoError(t, err)
		assert.ElementsMatch(t, []groceries.Item{bobsMilk}, bobResults)
	})

	t.Run("Free text names survive the document ID encoding", func(t *testing.T) {
		odd := groceries.Item{Name: "salt / pepper mix", UserID: "user-alice"}
		require.NoError(t, store.Add(ctx, odd))

		results, err := store.ListByUser(ctx, "user-alice")
		require.NoError(t, err)
		assert.Contains(t, results, odd)

		require.NoError(t, store.Remove(ctx, odd))
	})
}
