package blob

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []byte("hello")
	require.NoError(t, store.Save(ctx, KeyCurrency, original))
	original[0] = 'X'

	value, ok, err := store.Load(ctx, KeyCurrency)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), value)

	// Mutating the loaded copy must not touch the stored one either.
	value[0] = 'Y'
	again, _, err := store.Load(ctx, KeyCurrency)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), again)
}

func TestMemoryStore_FailErr(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	boom := errors.New("boom")

	require.NoError(t, store.Save(ctx, KeyBudget, []byte("5000")))

	store.FailErr = boom
	assert.ErrorIs(t, store.Save(ctx, KeyBudget, []byte("6000")), boom)
	_, _, err := store.Load(ctx, KeyBudget)
	assert.ErrorIs(t, err, boom)

	store.FailErr = nil
	value, ok, err := store.Load(ctx, KeyBudget)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("5000"), value)
}

func TestMemoryStore_DeleteAndKeys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyExpenses, []byte("[]")))
	require.NoError(t, store.Save(ctx, KeyGoals, []byte("[]")))
	assert.ElementsMatch(t, []string{KeyExpenses, KeyGoals}, store.Keys())

	require.NoError(t, store.Delete(ctx, KeyGoals))
	assert.Equal(t, []string{KeyExpenses}, store.Keys())
}
