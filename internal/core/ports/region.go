// Package ports defines the contracts between the application core and its adapters:
// the durable region substrate the store is built on and the per-entity repositories
// the use cases work against.
package ports

import (
	"context"
)

// Region is one named, independently growable byte space.
type Region interface {
	// Tag returns the name the region was opened with.
	Tag() string

	// Size returns the number of bytes ever written, i.e. the highest written offset plus one.
	Size(ctx context.Context) (int64, error)

	// ReadAt fills p with the bytes stored at off. Bytes that were never written,
	// including everything past Size, read as zero.
	ReadAt(ctx context.Context, p []byte, off int64) error

	// WriteAt stores p at off, growing the region as needed.
	// The write is durable when WriteAt returns and is applied entirely or not at all.
	WriteAt(ctx context.Context, p []byte, off int64) error
}

// RegionProvider hands out regions by tag.
// Opening the same tag twice, in one process or across restarts, yields the same bytes.
type RegionProvider interface {
	Region(ctx context.Context, tag string) (Region, error)

	// Close releases the underlying substrate. Regions must not be used afterwards.
	Close() error
}
