package cache

import (
	"barycentre-service/internal/platform/obs"
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"
)

// ValkeyLookupStore is a Valkey-backed LookupStore. Keys are namespaced by prefix
// and written without expiry.
type ValkeyLookupStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyLookupStore connects to addr.
func NewValkeyLookupStore(addr, prefix string) (*ValkeyLookupStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
	})
	if err != nil {
		return nil, fmt.Errorf("valkey connect: %w", err)
	}
	return &ValkeyLookupStore{client: client, prefix: prefix}, nil
}

func (s *ValkeyLookupStore) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "valkey.lookup.get")(&err)

	cmd := s.client.Do(ctx, s.client.B().Get().Key(s.prefix+key).Build())
	if valkey.IsValkeyNil(cmd.Error()) {
		return nil, false, nil
	}
	if cmd.Error() != nil {
		return nil, false, fmt.Errorf("get lookup cache %q: %w", key, cmd.Error())
	}

	b, err := cmd.AsBytes()
	if err != nil {
		return nil, false, fmt.Errorf("get lookup cache %q: %w", key, err)
	}
	return b, true, nil
}

func (s *ValkeyLookupStore) Set(ctx context.Context, key string, value []byte) (err error) {
	defer obs.Time(ctx, "valkey.lookup.set")(&err)

	cmd := s.client.Do(ctx,
		s.client.B().Set().Key(s.prefix+key).Value(string(value)).Build(),
	)
	if cmd.Error() != nil {
		return fmt.Errorf("insert lookup cache %q: %w", key, cmd.Error())
	}
	return nil
}

// Close releases the client.
func (s *ValkeyLookupStore) Close() {
	s.client.Close()
}
