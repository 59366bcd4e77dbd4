package cache

import (
	"barycentre-service/internal/platform/db"
	"barycentre-service/internal/ports"
	"context"
	"fmt"
	"strings"
)

// Options selects and configures a LookupStore backend.
type Options struct {
	Backend     string // memory | redis | valkey | postgres
	RedisAddr   string
	ValkeyAddr  string
	DatabaseURL string
	Prefix      string
	MaxEntries  int
}

// Open builds the LookupStore for opts.Backend. The returned close func is never nil.
// The postgres backend expects the schema created by InitSchema (cmd/dbtool).
func Open(ctx context.Context, opts Options) (ports.LookupStore, func(), error) {
	prefix := opts.Prefix
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}

	switch opts.Backend {
	case "", "memory":
		return NewMemoryLookupStore(opts.MaxEntries), func() {}, nil

	case "redis":
		client, err := DialRedis(ctx, opts.RedisAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("open lookup store: %w", err)
		}
		return NewRedisLookupStore(client, prefix), func() { _ = client.Close() }, nil

	case "valkey":
		s, err := NewValkeyLookupStore(opts.ValkeyAddr, prefix)
		if err != nil {
			return nil, nil, fmt.Errorf("open lookup store: %w", err)
		}
		return s, s.Close, nil

	case "postgres":
		conn, err := db.Open(opts.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open lookup store: %w", err)
		}
		return NewSQLLookupStore(conn, prefix), func() { _ = conn.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("open lookup store: unknown backend %q", opts.Backend)
	}
}
