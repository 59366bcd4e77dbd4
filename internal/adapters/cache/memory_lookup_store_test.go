package cache

import (
	"context"
	"strconv"
	"testing"
)

func TestMemoryLookupStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLookupStore(0)

	if _, ok, err := s.Get(ctx, "geocode:Paris"); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	value := []byte(`{"ok":true}`)
	if err := s.Set(ctx, "geocode:Paris", value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	value[0] = 'X'

	got, ok, err := s.Get(ctx, "geocode:Paris")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if string(got) != `{"ok":true}` {
		t.Fatalf("value = %q, store aliased caller slice", got)
	}
}

func TestMemoryLookupStoreUnboundedNeverEvicts(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLookupStore(0)

	for i := 0; i < 1000; i++ {
		_ = s.Set(ctx, "geocode:"+strconv.Itoa(i), []byte("v"))
	}
	if s.Len() != 1000 {
		t.Fatalf("len = %d, want 1000", s.Len())
	}
}

func TestMemoryLookupStoreEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLookupStore(2)

	_ = s.Set(ctx, "a", []byte("1"))
	_ = s.Set(ctx, "b", []byte("2"))
	_, _, _ = s.Get(ctx, "a")
	_ = s.Set(ctx, "c", []byte("3"))

	if _, ok, _ := s.Get(ctx, "b"); ok {
		t.Fatalf("expected b to be evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok, _ := s.Get(ctx, k); !ok {
			t.Fatalf("expected %s to be kept", k)
		}
	}
}
