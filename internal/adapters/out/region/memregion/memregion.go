// Package memregion provides a process-local region provider. Contents are lost when
// the process exits; it backs tests and STORAGE_DRIVER=memory.
package memregion

import (
	"context"
	"slices"
	"sync"

	"supplychain/internal/adapters/out/region"
)

type store struct {
	mu     sync.RWMutex
	blocks map[string]map[int64][]byte
	sizes  map[string]int64
}

// New returns an empty in-memory provider.
func New() *region.Provider {
	return region.NewProvider(&store{
		blocks: make(map[string]map[int64][]byte),
		sizes:  make(map[string]int64),
	}, region.DefaultBlockSize)
}

func (s *store) GetBlocks(_ context.Context, tag string, first, last int64) (map[int64][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64][]byte)
	for idx, data := range s.blocks[tag] {
		if idx >= first && idx <= last {
			out[idx] = slices.Clone(data)
		}
	}
	return out, nil
}

func (s *store) PutBlocks(_ context.Context, tag string, blocks map[int64][]byte, size int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.blocks[tag]
	if !ok {
		stored = make(map[int64][]byte)
		s.blocks[tag] = stored
	}
	for idx, data := range blocks {
		stored[idx] = slices.Clone(data)
	}
	s.sizes[tag] = size
	return nil
}

func (s *store) Size(_ context.Context, tag string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sizes[tag], nil
}

func (s *store) Close() error {
	return nil
}
