package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	store := NewRedisWithClient(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	ctx := context.Background()

	_, err := store.Load(ctx, "training")
	require.ErrorIs(t, err, ErrSnapshotNotFound)

	require.NoError(t, store.Save(ctx, "training", []byte(`{"name":"training"}`)))

	blob, err := store.Load(ctx, "training")
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"training"}`, string(blob))

	require.True(t, srv.Exists("ledgersim:ws:training"))
}

func TestMemoryStoreCopiesBlobs(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	blob := []byte("abc")
	require.NoError(t, store.Save(ctx, "production", blob))
	blob[0] = 'x'

	got, err := store.Load(ctx, "production")
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))

	_, err = store.Load(ctx, "missing")
	require.ErrorIs(t, err, ErrSnapshotNotFound)
}
