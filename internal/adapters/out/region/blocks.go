package region

import (
	"context"
	"fmt"
	"sync"

	"supplychain/internal/pkg/errs"
)

// DefaultBlockSize is the block size used by all providers in this repository.
const DefaultBlockSize = 4096

// BlockStore is the substrate a BlockRegion is built on.
type BlockStore interface {
	// GetBlocks returns the stored blocks of tag with index in [first, last].
	// Blocks that were never written are absent from the result.
	GetBlocks(ctx context.Context, tag string, first, last int64) (map[int64][]byte, error)

	// PutBlocks stores blocks and sets the region size in one atomic step.
	PutBlocks(ctx context.Context, tag string, blocks map[int64][]byte, size int64) error

	// Size returns the recorded size of tag, or 0 for a region never written.
	Size(ctx context.Context, tag string) (int64, error)

	Close() error
}

// BlockRegion is a ports.Region over a BlockStore.
type BlockRegion struct {
	store     BlockStore
	tag       string
	blockSize int64

	// mu serialises writes so partial blocks are merged against current contents.
	mu sync.Mutex
}

// NewBlockRegion binds tag in store. blockSize must be positive.
func NewBlockRegion(store BlockStore, tag string, blockSize int64) (*BlockRegion, error) {
	if tag == "" {
		return nil, errs.NewValueIsRequiredError("tag")
	}
	if blockSize <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("blockSize", blockSize, 1, "unbounded")
	}

	return &BlockRegion{
		store:     store,
		tag:       tag,
		blockSize: blockSize,
	}, nil
}

func (r *BlockRegion) Tag() string {
	return r.tag
}

func (r *BlockRegion) Size(ctx context.Context) (int64, error) {
	size, err := r.store.Size(ctx, r.tag)
	if err != nil {
		return 0, fmt.Errorf("region %s: size: %w", r.tag, err)
	}
	return size, nil
}

func (r *BlockRegion) ReadAt(ctx context.Context, p []byte, off int64) error {
	if off < 0 {
		return errs.NewValueIsOutOfRangeError("offset", off, 0, "unbounded")
	}
	if len(p) == 0 {
		return nil
	}

	first, last := r.span(off, len(p))
	blocks, err := r.store.GetBlocks(ctx, r.tag, first, last)
	if err != nil {
		return fmt.Errorf("region %s: read at %d: %w", r.tag, off, err)
	}

	clear(p)
	for idx, data := range blocks {
		r.overlay(p, off, idx, data)
	}
	return nil
}

func (r *BlockRegion) WriteAt(ctx context.Context, p []byte, off int64) error {
	if off < 0 {
		return errs.NewValueIsOutOfRangeError("offset", off, 0, "unbounded")
	}
	if len(p) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	first, last := r.span(off, len(p))
	existing, err := r.store.GetBlocks(ctx, r.tag, first, last)
	if err != nil {
		return fmt.Errorf("region %s: write at %d: %w", r.tag, off, err)
	}
	size, err := r.store.Size(ctx, r.tag)
	if err != nil {
		return fmt.Errorf("region %s: write at %d: %w", r.tag, off, err)
	}

	blocks := make(map[int64][]byte, last-first+1)
	for idx := first; idx <= last; idx++ {
		block := make([]byte, r.blockSize)
		copy(block, existing[idx])

		start := idx * r.blockSize
		// Copy the part of p that falls inside this block.
		lo := max(off, start)
		hi := min(off+int64(len(p)), start+r.blockSize)
		copy(block[lo-start:hi-start], p[lo-off:hi-off])

		blocks[idx] = block
	}

	if err := r.store.PutBlocks(ctx, r.tag, blocks, max(size, off+int64(len(p)))); err != nil {
		return fmt.Errorf("region %s: write at %d: %w", r.tag, off, err)
	}
	return nil
}

func (r *BlockRegion) span(off int64, n int) (int64, int64) {
	return off / r.blockSize, (off + int64(n) - 1) / r.blockSize
}

// overlay copies the intersection of block idx and the window [off, off+len(p)) into p.
func (r *BlockRegion) overlay(p []byte, off, idx int64, data []byte) {
	start := idx * r.blockSize
	lo := max(off, start)
	hi := min(off+int64(len(p)), start+int64(len(data)))
	if lo >= hi {
		return
	}
	copy(p[lo-off:hi-off], data[lo-start:hi-start])
}
