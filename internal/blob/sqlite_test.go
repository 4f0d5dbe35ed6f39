package blob

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyExpenses, []byte(`[{"id":"1"}]`)))

	value, ok, err := store.Load(ctx, KeyExpenses)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"1"}]`), value)
}

func TestSQLiteStore_LoadMissingKey(t *testing.T) {
	store := newTestStore(t)

	value, ok, err := store.Load(context.Background(), KeyBudget)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyCurrency, []byte("₹")))
	require.NoError(t, store.Save(ctx, KeyCurrency, []byte("€")))

	value, ok, err := store.Load(ctx, KeyCurrency)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("€"), value)
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyGoals, []byte("[]")))
	require.NoError(t, store.Delete(ctx, KeyGoals))

	_, ok, err := store.Load(ctx, KeyGoals)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is fine.
	assert.NoError(t, store.Delete(ctx, KeyGoals))
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyExpenses, []byte("[]")))
	require.NoError(t, store.Save(ctx, KeyBudget, []byte("5000")))
	require.NoError(t, store.Delete(ctx, KeyExpenses))

	_, ok, err := store.Load(ctx, KeyBudget)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, KeyExpenses, []byte(`[{"id":"1"}]`)))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, ok, err := reopened.Load(ctx, KeyExpenses)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"1"}]`), value)
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.Error(t, err)
}
