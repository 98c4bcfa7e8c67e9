//go:build unit

package codestore

import (
	"context"
	"testing"
	"time"

	"homeservice-booking/internal/infra"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phone = "+212 6 12 34 56 78"

func newStore(t *testing.T) (*RedisCodeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCodeStore(client), mr
}

func TestRedisCodeStore_Codes(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	_, err := store.GetCode(ctx, phone)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	require.NoError(t, store.SaveCode(ctx, phone, "hashed", 5*time.Minute))
	got, err := store.GetCode(ctx, phone)
	require.NoError(t, err)
	assert.Equal(t, "hashed", got)

	require.NoError(t, store.DeleteCode(ctx, phone))
	_, err = store.GetCode(ctx, phone)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	require.NoError(t, store.SaveCode(ctx, phone, "again", 5*time.Minute))
	mr.FastForward(6 * time.Minute)
	_, err = store.GetCode(ctx, phone)
	assert.True(t, infra.IsKind(err, infra.KindNotFound), "code expires with its ttl")
}

func TestRedisCodeStore_Verified(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()
	sid, other := uuid.New(), uuid.New()

	ok, err := store.IsVerified(ctx, sid, phone)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.MarkVerified(ctx, sid, phone, time.Hour))

	ok, err = store.IsVerified(ctx, sid, phone)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.IsVerified(ctx, other, phone)
	require.NoError(t, err)
	assert.False(t, ok, "verification is per session")

	ok, err = store.IsVerified(ctx, sid, "+212 7 00 00 00 00")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Hour)
	ok, err = store.IsVerified(ctx, sid, phone)
	require.NoError(t, err)
	assert.False(t, ok)
}
