package routing

import (
	"barycentre-service/internal/domain"
	"barycentre-service/internal/ports"
	"context"
	"fmt"
	"sync"
)

type MockPair struct {
	From, To domain.Coordinates
	Response ports.RouteResponse
}

// Mock is an in-memory RouteProvider keyed by origin|destination.
// Unknown pairs fail with an error. Calls are counted.
type Mock struct {
	mu    sync.Mutex
	m     map[[2]domain.Coordinates]ports.RouteResponse
	calls int
}

func NewMock(pairs []MockPair) *Mock {
	m := make(map[[2]domain.Coordinates]ports.RouteResponse, len(pairs))
	for _, p := range pairs {
		m[[2]domain.Coordinates{p.From, p.To}] = p.Response
	}
	return &Mock{m: m}
}

func (p *Mock) Route(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	r, ok := p.m[[2]domain.Coordinates{origin, destination}]
	if !ok {
		return ports.RouteResponse{}, fmt.Errorf("missing pair %v -> %v", origin, destination)
	}

	return r, nil
}

func (p *Mock) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
