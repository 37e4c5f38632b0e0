package stable

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
)

// ErrCounterExhausted is returned by Counter.Next once every identifier has been issued.
var ErrCounterExhausted = errors.New("identifier space exhausted")

const counterSize = 8

// Counter is a monotonic id allocator persisted as a big-endian uint64 at offset 0 of its region.
// An empty region counts from 0. Counter is not safe for concurrent use; Repository serialises it.
type Counter struct {
	region ports.Region
}

func NewCounter(region ports.Region) *Counter {
	return &Counter{region: region}
}

// Next returns the current value and durably stores the value plus one.
// There is no rollback: an id whose record is never written stays unused.
func (c *Counter) Next(ctx context.Context) (kernel.ID, error) {
	current, err := c.Peek(ctx)
	if err != nil {
		return 0, err
	}
	if current == math.MaxUint64 {
		return 0, fmt.Errorf("counter %s: %w", c.region.Tag(), ErrCounterExhausted)
	}

	var buf [counterSize]byte
	binary.BigEndian.PutUint64(buf[:], uint64(current)+1)
	if err := c.region.WriteAt(ctx, buf[:], 0); err != nil {
		return 0, fmt.Errorf("counter %s: %w", c.region.Tag(), err)
	}
	return current, nil
}

// Peek returns the value Next would return without advancing.
func (c *Counter) Peek(ctx context.Context) (kernel.ID, error) {
	var buf [counterSize]byte
	if err := c.region.ReadAt(ctx, buf[:], 0); err != nil {
		return 0, fmt.Errorf("counter %s: %w", c.region.Tag(), err)
	}
	return kernel.ID(binary.BigEndian.Uint64(buf[:])), nil
}
