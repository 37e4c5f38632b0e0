package commands_test

import (
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestNewAddOrderCommand(t *testing.T) {
	t.Run("should require a positive quantity", func(t *testing.T) {
		_, err := commands.NewAddOrderCommand(1, 0, now, nil)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should not check the product reference", func(t *testing.T) {
		cmd, err := commands.NewAddOrderCommand(999, 1, now, nil)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(999), cmd.ProductID())
	})
}

func TestAddOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should keep the supplied dates", func(t *testing.T) {
		ctx := t.Context()
		delivery := now.Add(48 * time.Hour)
		cmd, err := commands.NewAddOrderCommand(1, 3, now.Add(-time.Hour), &delivery)
		require.NoError(t, err)

		repo := new(MockRepository[*order.Order])
		repo.On("NextID", ctx).Return(kernel.ID(7), nil).Once()
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

		h := commands.NewAddOrderCommandHandler(repo, kernel.NewFixedClock(now))
		o, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(7), o.ID())
		assert.Equal(t, now.Add(-time.Hour), o.OrderDate())
		require.NotNil(t, o.DeliveryDate())
		assert.Equal(t, delivery, *o.DeliveryDate())
		repo.AssertExpectations(t)
	})

	t.Run("should default a missing order date to now", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewAddOrderCommand(1, 3, time.Time{}, nil)
		require.NoError(t, err)

		repo := new(MockRepository[*order.Order])
		repo.On("NextID", ctx).Return(kernel.ID(0), nil).Once()
		repo.On("Add", ctx, mock.Anything).Return(nil).Once()

		h := commands.NewAddOrderCommandHandler(repo, kernel.NewFixedClock(now))
		o, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, now, o.OrderDate())
		assert.Nil(t, o.DeliveryDate())
	})
}

func TestUpdateOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	delivery := now.Add(time.Hour)
	existing, err := order.NewOrder(3, 1, 2, now, &delivery)
	require.NoError(t, err)

	repo := new(MockRepository[*order.Order])
	repo.On("Update", ctx, kernel.ID(3)).Return(existing, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(repo)
	updated, err := h.Handle(ctx, commands.NewUpdateOrderCommand(3, 5, 0, now, nil))

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(5), updated.ProductID())
	assert.Zero(t, updated.Quantity())
	assert.Nil(t, updated.DeliveryDate())
}
