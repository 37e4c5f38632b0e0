package shipment_test

import (
	"fmt"
	"testing"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func newShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(0, 5, "box A", created)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("should start pending with empty trail", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.Validate())
		assert.Equal(t, kernel.ID(0), s.ID())
		assert.Equal(t, kernel.ID(5), s.OrderID())
		assert.Equal(t, "box A", s.ShippingDetails())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Equal(t, created, s.CreatedAt())
		assert.Nil(t, s.UpdatedAt())
		assert.NotNil(t, s.LocationProofs())
		assert.Empty(t, s.LocationProofs())
	})

	t.Run("should require shipping details", func(t *testing.T) {
		s, err := shipment.NewShipment(0, 5, "", created)

		assert.Nil(t, s)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "shipping_details")
	})
}

func TestShipment_UpdateStatus(t *testing.T) {
	t.Run("should accept any transition from pending", func(t *testing.T) {
		for _, target := range []shipment.Status{
			shipment.Pending, shipment.Shipped, shipment.InTransit, shipment.Delivered, shipment.Canceled,
		} {
			t.Run(target.String(), func(t *testing.T) {
				s := newShipment(t)
				proof := shipment.NewLocationProof(created, "dock 1", "alice")

				require.NoError(t, s.UpdateStatus(target, proof, created.Add(time.Hour)))
				assert.Equal(t, target, s.Status())
			})
		}
	})

	t.Run("should leave terminal statuses on request", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.UpdateStatus(shipment.Delivered, shipment.NewLocationProof(created, "door", "bob"), created))

		require.NoError(t, s.UpdateStatus(shipment.Pending, shipment.NewLocationProof(created, "depot", "bob"), created))
		assert.Equal(t, shipment.Pending, s.Status())
	})

	t.Run("should append in call order even without a status change", func(t *testing.T) {
		s := newShipment(t)
		var expected []shipment.LocationProof
		for i := range 5 {
			proof := shipment.NewLocationProof(created.Add(time.Duration(i)*time.Minute), fmt.Sprintf("cp-%d", i), "scanner")
			expected = append(expected, proof)
			require.NoError(t, s.UpdateStatus(shipment.InTransit, proof, created.Add(time.Hour)))

			assert.Equal(t, expected, s.LocationProofs())
		}
	})

	t.Run("should stamp updated_at", func(t *testing.T) {
		s := newShipment(t)
		at := created.Add(2 * time.Hour)

		require.NoError(t, s.UpdateStatus(shipment.Shipped, shipment.NewLocationProof(created, "dock", "eve"), at))

		require.NotNil(t, s.UpdatedAt())
		assert.Equal(t, at, *s.UpdatedAt())
	})

	t.Run("should reject undefined status and keep the record", func(t *testing.T) {
		s := newShipment(t)

		err := s.UpdateStatus(shipment.Status(42), shipment.NewLocationProof(created, "dock", "eve"), created)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Empty(t, s.LocationProofs())
		assert.Nil(t, s.UpdatedAt())
	})

	t.Run("should reject zero value proof", func(t *testing.T) {
		s := newShipment(t)

		err := s.UpdateStatus(shipment.Shipped, shipment.LocationProof{}, created)

		require.ErrorIs(t, err, shipment.ErrLocationProofIsNotConstructed)
		assert.Empty(t, s.LocationProofs())
	})
}

func TestShipment_LocationProofsAreCopied(t *testing.T) {
	s := newShipment(t)
	require.NoError(t, s.UpdateStatus(shipment.Shipped, shipment.NewLocationProof(created, "dock", "eve"), created))

	proofs := s.LocationProofs()
	proofs[0] = shipment.NewLocationProof(created, "forged", "mallory")

	assert.Equal(t, "dock", s.LocationProofs()[0].LocationData())
}

func TestShipment_Update(t *testing.T) {
	s := newShipment(t)
	at := created.Add(time.Minute)

	s.Update(9, "", at)

	assert.Equal(t, kernel.ID(9), s.OrderID())
	assert.Empty(t, s.ShippingDetails())
	assert.Equal(t, shipment.Pending, s.Status())
	require.NotNil(t, s.UpdatedAt())
	assert.Equal(t, at, *s.UpdatedAt())
}

func TestLocationProof_Stamped(t *testing.T) {
	t.Run("should fill a missing timestamp", func(t *testing.T) {
		p := shipment.NewLocationProof(time.Time{}, "dock", "eve").Stamped(created)
		assert.Equal(t, created, p.Timestamp())
		assert.Equal(t, "dock", p.LocationData())
		assert.Equal(t, "eve", p.Verifier())
	})

	t.Run("should keep an existing timestamp", func(t *testing.T) {
		p := shipment.NewLocationProof(created, "dock", "eve").Stamped(created.Add(time.Hour))
		assert.Equal(t, created, p.Timestamp())
	})
}
