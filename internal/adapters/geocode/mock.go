package geocode

import (
	"barycentre-service/internal/domain"
	"context"
	"fmt"
	"sync"
)

// Mock is an in-memory Geocoder and ReverseGeocoder for tests and offline runs.
// Unknown inputs fail with ErrNoResults. Calls are counted per input.
type Mock struct {
	mu       sync.Mutex
	forward  map[string]domain.Coordinates
	reverse  map[domain.Coordinates]string
	Err      error
	calls    map[string]int
	revCalls map[domain.Coordinates]int
}

func NewMock(forward map[string]domain.Coordinates, reverse map[domain.Coordinates]string) *Mock {
	if forward == nil {
		forward = map[string]domain.Coordinates{}
	}
	if reverse == nil {
		reverse = map[domain.Coordinates]string{}
	}
	return &Mock{
		forward:  forward,
		reverse:  reverse,
		calls:    map[string]int{},
		revCalls: map[domain.Coordinates]int{},
	}
}

func (m *Mock) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls[address]++
	if m.Err != nil {
		return domain.Coordinates{}, m.Err
	}

	c, ok := m.forward[address]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, ErrNoResults)
	}
	return c, nil
}

func (m *Mock) ReverseGeocode(ctx context.Context, at domain.Coordinates) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.revCalls[at]++
	if m.Err != nil {
		return "", m.Err
	}

	addr, ok := m.reverse[at]
	if !ok {
		return "", fmt.Errorf("reverse geocode %v: %w", at, ErrNoResults)
	}
	return addr, nil
}

// Calls returns how many times Geocode was invoked for address.
func (m *Mock) Calls(address string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[address]
}

// ReverseCalls returns how many times ReverseGeocode was invoked for at.
func (m *Mock) ReverseCalls(at domain.Coordinates) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revCalls[at]
}
