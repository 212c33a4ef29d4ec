package persist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supergo/internal/model"
	"supergo/internal/state"
)

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.Nop()
	ctx := context.Background()

	store, err := NewFileStore(dir, logger)
	require.NoError(t, err)

	t.Run("missing key loads as nil", func(t *testing.T) {
		snapshot, err := store.Load(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("save and load round trip", func(t *testing.T) {
		original := &state.Snapshot{
			Products:    []model.Product{{ID: 1, Name: "Playera", Price: 20.00, Stock: 5}},
			Cart:        []model.CartItem{{ProductID: 1, Quantity: 2}},
			SearchQuery: "playera",
		}
		require.NoError(t, store.Save(ctx, DefaultKey, original))

		loaded, err := store.Load(ctx, DefaultKey)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, original.Products, loaded.Products)
		assert.Equal(t, original.Cart, loaded.Cart)
		assert.Equal(t, "playera", loaded.SearchQuery)
	})

	t.Run("save replaces the previous snapshot", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "k", &state.Snapshot{SearchQuery: "uno"}))
		require.NoError(t, store.Save(ctx, "k", &state.Snapshot{SearchQuery: "dos"}))

		loaded, err := store.Load(ctx, "k")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, "dos", loaded.SearchQuery)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "clean", &state.Snapshot{}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.Equal(t, ".json", filepath.Ext(e.Name()))
		}
	})

	t.Run("corrupt blob is an error", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

		_, err := store.Load(ctx, "bad")
		assert.Error(t, err)
	})
}

func TestNewFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "snapshots")

	_, err := NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	snapshot, err := store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	original := &state.Snapshot{Wishlist: []int{3, 6, 13}}
	require.NoError(t, store.Save(ctx, DefaultKey, original))
	assert.Equal(t, 1, store.Saves)

	loaded, err := store.Load(ctx, DefaultKey)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, original.Wishlist, loaded.Wishlist)

	store.FailSave = true
	assert.Error(t, store.Save(ctx, DefaultKey, original))

	store.FailLoad = true
	_, err = store.Load(ctx, DefaultKey)
	assert.Error(t, err)
}
