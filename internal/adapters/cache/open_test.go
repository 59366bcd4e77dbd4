package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemory(t *testing.T) {
	s, closeFn, err := Open(context.Background(), Options{Backend: "memory", MaxEntries: 2})
	require.NoError(t, err)
	defer closeFn()

	_, ok := s.(*MemoryLookupStore)
	assert.True(t, ok)
}

func TestOpenRedisNamespacesKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s, closeFn, err := Open(ctx, Options{Backend: "redis", RedisAddr: mr.Addr(), Prefix: "barycentre"})
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, s.Set(ctx, "geocode:Paris", []byte(`{"ok":true}`)))
	assert.True(t, mr.Exists("barycentre:geocode:Paris"))
}

func TestOpenUnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), Options{Backend: "memcached"})
	assert.Error(t, err)
}
