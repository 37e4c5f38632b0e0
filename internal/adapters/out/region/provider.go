package region

import (
	"context"
	"sync"

	"supplychain/internal/core/ports"
)

// Provider implements ports.RegionProvider over one BlockStore.
// Region returns the same *BlockRegion for repeated calls with one tag.
type Provider struct {
	store     BlockStore
	blockSize int64

	mu      sync.Mutex
	regions map[string]*BlockRegion
}

var _ ports.RegionProvider = (*Provider)(nil)

func NewProvider(store BlockStore, blockSize int64) *Provider {
	return &Provider{
		store:     store,
		blockSize: blockSize,
		regions:   make(map[string]*BlockRegion),
	}
}

func (p *Provider) Region(_ context.Context, tag string) (ports.Region, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r, ok := p.regions[tag]; ok {
		return r, nil
	}

	r, err := NewBlockRegion(p.store, tag, p.blockSize)
	if err != nil {
		return nil, err
	}
	p.regions[tag] = r
	return r, nil
}

func (p *Provider) Close() error {
	return p.store.Close()
}
