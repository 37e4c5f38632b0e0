package stable_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"supplychain/internal/adapters/out/region/memregion"
	"supplychain/internal/adapters/out/stable"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"

	"github.com/stretchr/testify/require"
)

// note is a minimal entity used to exercise the generic store.
type note struct {
	id   kernel.ID
	text string
}

func (n *note) ID() kernel.ID { return n.id }

type noteCodec struct{}

func (noteCodec) Encode(n *note) ([]byte, error) {
	return []byte(n.id.String() + ":" + n.text), nil
}

func (noteCodec) Decode(data []byte) (*note, error) {
	idPart, text, ok := strings.Cut(string(data), ":")
	if !ok {
		return nil, errors.New("missing separator")
	}
	id, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil {
		return nil, err
	}
	return &note{id: kernel.ID(id), text: text}, nil
}

func newRegion(t *testing.T, provider ports.RegionProvider, tag string) ports.Region {
	t.Helper()
	r, err := provider.Region(context.Background(), tag)
	require.NoError(t, err)
	return r
}

func newNotes(t *testing.T) (*stable.Repository[*note], ports.Region) {
	t.Helper()
	provider := memregion.New()
	records := newRegion(t, provider, "note/records")
	return stable.NewRepository("note", newRegion(t, provider, "note/counter"), records, noteCodec{}), records
}
