package kvstore_test

import (
	"context"
	"testing"

	"temple-booking/internal/infrastructure/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Roundtrip(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Get(ctx, "temple_bookings")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "temple_bookings", []byte(`[{"id":"booking_1"}]`)))

	value, err := store.Get(ctx, "temple_bookings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"booking_1"}]`), value)
}

func TestFileStore_OverwriteReplacesValue(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "temple_stats", []byte(`{"totalBookings":1}`)))
	require.NoError(t, store.Set(ctx, "temple_stats", []byte(`{"totalBookings":2}`)))

	value, err := store.Get(ctx, "temple_stats")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"totalBookings":2}`), value)
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)

	original := []byte("abc")
	require.NoError(t, store.Set(ctx, "key", original))

	// mutating the caller's slice must not leak into the store
	original[0] = 'z'

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)

	// nor should mutating a returned slice
	value[0] = 'q'
	again, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
