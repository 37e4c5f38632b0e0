package commands_test

import (
	"sync"
	"testing"
	"time"

	"supplychain/internal/adapters/out/region/memregion"
	"supplychain/internal/adapters/out/stable"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddShipmentCommand(t *testing.T) {
	_, err := commands.NewAddShipmentCommand(1, "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "shipping_details")
}

func TestAddShipmentCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddShipmentCommand(4, "box A")
	require.NoError(t, err)

	repo := new(MockRepository[*shipment.Shipment])
	repo.On("NextID", ctx).Return(kernel.ID(0), nil).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()

	h := commands.NewAddShipmentCommandHandler(repo, kernel.NewFixedClock(now))
	s, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Pending, s.Status())
	assert.Equal(t, now, s.CreatedAt())
	assert.Nil(t, s.UpdatedAt())
	assert.Empty(t, s.LocationProofs())
	assert.Equal(t, kernel.ID(4), s.OrderID())
}

func TestUpdateShipmentCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	existing, err := shipment.NewShipment(0, 4, "box A", now)
	require.NoError(t, err)
	clock := kernel.NewFixedClock(now)
	later := clock.Advance(time.Hour)

	repo := new(MockRepository[*shipment.Shipment])
	repo.On("Update", ctx, kernel.ID(0)).Return(existing, nil).Once()

	h := commands.NewUpdateShipmentCommandHandler(repo, clock)
	s, err := h.Handle(ctx, commands.NewUpdateShipmentCommand(0, 5, "box B"))

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(5), s.OrderID())
	assert.Equal(t, "box B", s.ShippingDetails())
	require.NotNil(t, s.UpdatedAt())
	assert.Equal(t, later, *s.UpdatedAt())
	assert.Equal(t, shipment.Pending, s.Status())
}

func TestNewUpdateShipmentStatusCommand(t *testing.T) {
	t.Run("should reject undefined statuses", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Unknown, shipment.Status(6)} {
			_, err := commands.NewUpdateShipmentStatusCommand(0, status, now, "dock", "eve")
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should carry the proof", func(t *testing.T) {
		cmd, err := commands.NewUpdateShipmentStatusCommand(3, shipment.Delivered, now, "door", "bob")

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(3), cmd.ID())
		assert.Equal(t, shipment.Delivered, cmd.Status())
		assert.Equal(t, now, cmd.Proof().Timestamp())
		assert.Equal(t, "door", cmd.Proof().LocationData())
		assert.Equal(t, "bob", cmd.Proof().Verifier())
	})
}

func TestUpdateShipmentStatusCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel right after creation", func(t *testing.T) {
		ctx := t.Context()
		existing, err := shipment.NewShipment(0, 4, "box A", now)
		require.NoError(t, err)

		repo := new(MockRepository[*shipment.Shipment])
		repo.On("Update", ctx, kernel.ID(0)).Return(existing, nil).Once()

		cmd, err := commands.NewUpdateShipmentStatusCommand(0, shipment.Canceled, now, "depot", "ops")
		require.NoError(t, err)

		h := commands.NewUpdateShipmentStatusCommandHandler(repo, kernel.NewFixedClock(now))
		s, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, shipment.Canceled, s.Status())
		assert.Len(t, s.LocationProofs(), 1)
	})

	t.Run("should stamp a proof without timestamp", func(t *testing.T) {
		ctx := t.Context()
		existing, err := shipment.NewShipment(0, 4, "box A", now)
		require.NoError(t, err)
		clock := kernel.NewFixedClock(now.Add(time.Minute))

		repo := new(MockRepository[*shipment.Shipment])
		repo.On("Update", ctx, kernel.ID(0)).Return(existing, nil).Once()

		cmd, err := commands.NewUpdateShipmentStatusCommand(0, shipment.Shipped, time.Time{}, "dock", "eve")
		require.NoError(t, err)

		h := commands.NewUpdateShipmentStatusCommandHandler(repo, clock)
		s, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, clock.Now(), s.LocationProofs()[0].Timestamp())
		assert.Equal(t, clock.Now(), *s.UpdatedAt())
	})

	t.Run("should report a missing shipment", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockRepository[*shipment.Shipment])
		repo.On("Update", ctx, kernel.ID(8)).
			Return(nil, errs.NewObjectNotFoundError(shipment.EntityName, uint64(8))).Once()

		cmd, err := commands.NewUpdateShipmentStatusCommand(8, shipment.Shipped, now, "dock", "eve")
		require.NoError(t, err)

		h := commands.NewUpdateShipmentStatusCommandHandler(repo, kernel.NewFixedClock(now))
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should keep every concurrent proof", func(t *testing.T) {
		ctx := t.Context()
		repos, err := stable.Open(ctx, memregion.New())
		require.NoError(t, err)
		clock := kernel.NewFixedClock(now)

		add := commands.NewAddShipmentCommandHandler(repos.Shipments, clock)
		addCmd, err := commands.NewAddShipmentCommand(0, "box")
		require.NoError(t, err)
		s, err := add.Handle(ctx, addCmd)
		require.NoError(t, err)

		h := commands.NewUpdateShipmentStatusCommandHandler(repos.Shipments, clock)
		const updates = 5
		var wg sync.WaitGroup
		for range updates {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cmd, err := commands.NewUpdateShipmentStatusCommand(s.ID(), shipment.InTransit, now, "hub", "x")
				assert.NoError(t, err)
				_, err = h.Handle(ctx, cmd)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		stored, err := repos.Shipments.Get(ctx, s.ID())
		require.NoError(t, err)
		assert.Len(t, stored.LocationProofs(), updates)
	})

	t.Run("should refuse a proof that overflows the record", func(t *testing.T) {
		ctx := t.Context()
		repos, err := stable.Open(ctx, memregion.New())
		require.NoError(t, err)
		clock := kernel.NewFixedClock(now)

		add := commands.NewAddShipmentCommandHandler(repos.Shipments, clock)
		addCmd, err := commands.NewAddShipmentCommand(0, "box")
		require.NoError(t, err)
		s, err := add.Handle(ctx, addCmd)
		require.NoError(t, err)

		big := make([]byte, stable.MaxRecordSize)
		for i := range big {
			big[i] = 'p'
		}
		cmd, err := commands.NewUpdateShipmentStatusCommand(s.ID(), shipment.Shipped, now, string(big), "x")
		require.NoError(t, err)

		h := commands.NewUpdateShipmentStatusCommandHandler(repos.Shipments, clock)
		_, err = h.Handle(ctx, cmd)
		require.True(t, errs.IsInvalidInput(err))

		stored, err := repos.Shipments.Get(ctx, s.ID())
		require.NoError(t, err)
		assert.Equal(t, shipment.Pending, stored.Status())
		assert.Empty(t, stored.LocationProofs())
	})
}
