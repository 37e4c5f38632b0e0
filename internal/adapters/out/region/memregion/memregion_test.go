package memregion_test

import (
	"context"
	"testing"

	"supplychain/internal/adapters/out/region/memregion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_TagsAreIndependent(t *testing.T) {
	ctx := context.Background()
	p := memregion.New()
	defer p.Close()

	a, err := p.Region(ctx, "order/records")
	require.NoError(t, err)
	b, err := p.Region(ctx, "user/records")
	require.NoError(t, err)

	require.NoError(t, a.WriteAt(ctx, []byte("order"), 0))

	buf := make([]byte, 5)
	require.NoError(t, b.ReadAt(ctx, buf, 0))
	assert.Equal(t, make([]byte, 5), buf)

	require.NoError(t, a.ReadAt(ctx, buf, 0))
	assert.Equal(t, "order", string(buf))
}

func TestProvider_CallerBuffersAreNotRetained(t *testing.T) {
	ctx := context.Background()
	p := memregion.New()

	r, err := p.Region(ctx, "t")
	require.NoError(t, err)

	src := []byte("abc")
	require.NoError(t, r.WriteAt(ctx, src, 0))
	src[0] = 'z'

	dst := make([]byte, 3)
	require.NoError(t, r.ReadAt(ctx, dst, 0))
	assert.Equal(t, "abc", string(dst))
}
