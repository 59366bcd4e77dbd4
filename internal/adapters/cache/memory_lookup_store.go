package cache

import (
	"container/list"
	"context"
	"sync"
)

// MemoryLookupStore is a process-wide in-memory LookupStore.
// With maxEntries <= 0 it never evicts; otherwise the least recently used key is
// dropped once the bound is exceeded. It is safe for concurrent use.
type MemoryLookupStore struct {
	mu         sync.Mutex
	maxEntries int
	items      map[string]*list.Element
	order      *list.List
}

type memoryItem struct {
	key   string
	value []byte
}

func NewMemoryLookupStore(maxEntries int) *MemoryLookupStore {
	return &MemoryLookupStore{
		maxEntries: maxEntries,
		items:      make(map[string]*list.Element),
		order:      list.New(),
	}
}

func (s *MemoryLookupStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	s.order.MoveToFront(el)

	v := el.Value.(*memoryItem).value
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryLookupStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := append([]byte(nil), value...)

	if el, ok := s.items[key]; ok {
		el.Value.(*memoryItem).value = v
		s.order.MoveToFront(el)
		return nil
	}

	s.items[key] = s.order.PushFront(&memoryItem{key: key, value: v})

	if s.maxEntries > 0 && s.order.Len() > s.maxEntries {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.items, oldest.Value.(*memoryItem).key)
	}

	return nil
}

// Len returns the number of cached keys.
func (s *MemoryLookupStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
