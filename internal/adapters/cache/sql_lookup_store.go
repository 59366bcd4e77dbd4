package cache

import (
	"barycentre-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLLookupStore is a Postgres-backed LookupStore over the lookup_cache table.
// See InitSchema.
type SQLLookupStore struct {
	DB     *sql.DB
	prefix string
}

func NewSQLLookupStore(db *sql.DB, prefix string) *SQLLookupStore {
	return &SQLLookupStore{DB: db, prefix: prefix}
}

func (s *SQLLookupStore) Get(ctx context.Context, key string) (_ []byte, _ bool, err error) {
	defer obs.Time(ctx, "sql.lookup.get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("lookup cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get lookup cache: key must not be empty")
	}

	q := `
	SELECT value
    FROM lookup_cache
    WHERE key = $1;
	`

	var value []byte
	err = s.DB.QueryRowContext(ctx, q, s.prefix+key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get lookup cache: query lookup_cache table: %w", err)
	}

	return value, true, nil
}

func (s *SQLLookupStore) Set(ctx context.Context, key string, value []byte) (err error) {
	defer obs.Time(ctx, "sql.lookup.set")(&err)

	if s.DB == nil {
		return errors.New("lookup cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert lookup cache: empty key")
	}

	q := `
	INSERT INTO lookup_cache (key, value)
    VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value,
		updated_at = now();
	`

	if _, err := s.DB.ExecContext(ctx, q, s.prefix+key, value); err != nil {
		return fmt.Errorf("insert lookup cache key=%q: %w", key, err)
	}

	return nil
}
