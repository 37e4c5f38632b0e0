package stable_test

import (
	"context"
	"encoding/binary"
	"math"
	"testing"

	"supplychain/internal/adapters/out/region/memregion"
	"supplychain/internal/adapters/out/stable"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("should start at zero and increase by one", func(t *testing.T) {
		c := stable.NewCounter(newRegion(t, memregion.New(), "c"))

		for want := range kernel.ID(5) {
			got, err := c.Next(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}

		peek, err := c.Peek(ctx)
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(5), peek)
	})

	t.Run("should persist the next value big endian", func(t *testing.T) {
		r := newRegion(t, memregion.New(), "c")
		c := stable.NewCounter(r)

		_, err := c.Next(ctx)
		require.NoError(t, err)
		_, err = c.Next(ctx)
		require.NoError(t, err)

		buf := make([]byte, 8)
		require.NoError(t, r.ReadAt(ctx, buf, 0))
		assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 2}, buf)
	})

	t.Run("should resume from the stored value", func(t *testing.T) {
		provider := memregion.New()
		_, err := stable.NewCounter(newRegion(t, provider, "c")).Next(ctx)
		require.NoError(t, err)

		got, err := stable.NewCounter(newRegion(t, provider, "c")).Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(1), got)
	})

	t.Run("should refuse to wrap around", func(t *testing.T) {
		r := newRegion(t, memregion.New(), "c")
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, math.MaxUint64)
		require.NoError(t, r.WriteAt(ctx, buf, 0))

		_, err := stable.NewCounter(r).Next(ctx)
		require.ErrorIs(t, err, stable.ErrCounterExhausted)

		peek, err := stable.NewCounter(r).Peek(ctx)
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(math.MaxUint64), peek)
	})
}

func TestCounter_Peek(t *testing.T) {
	c := stable.NewCounter(newRegion(t, memregion.New(), "c"))

	for range 3 {
		got, err := c.Peek(context.Background())
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(0), got)
	}
}
