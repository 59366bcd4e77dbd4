package cache

import (
	"barycentre-service/internal/platform/obs"
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisLookupStore is a Redis-backed LookupStore. Keys are namespaced by prefix
// and written without expiry.
type RedisLookupStore struct {
	client *redis.Client
	prefix string
}

func NewRedisLookupStore(client *redis.Client, prefix string) *RedisLookupStore {
	return &RedisLookupStore{client: client, prefix: prefix}
}

// DialRedis connects to addr and verifies the connection with PING.
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connect %q: %w", addr, err)
	}
	return client, nil
}

func (s *RedisLookupStore) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "redis.lookup.get")(&err)

	if s.client == nil {
		return nil, false, errors.New("redis lookup store: client is nil")
	}

	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get lookup cache %q: %w", key, err)
	}

	return b, true, nil
}

func (s *RedisLookupStore) Set(ctx context.Context, key string, value []byte) (err error) {
	defer obs.Time(ctx, "redis.lookup.set")(&err)

	if s.client == nil {
		return errors.New("redis lookup store: client is nil")
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("insert lookup cache %q: %w", key, err)
	}

	return nil
}
