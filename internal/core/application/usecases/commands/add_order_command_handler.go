package commands

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
)

type AddOrderCommandHandler struct {
	repo  ports.OrderRepository
	clock kernel.Clock
}

func NewAddOrderCommandHandler(repo ports.OrderRepository, clock kernel.Clock) AddOrderCommandHandler {
	return AddOrderCommandHandler{repo: repo, clock: clock}
}

func (h *AddOrderCommandHandler) Handle(ctx context.Context, cmd AddOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orderDate := cmd.OrderDate()
	if orderDate.IsZero() {
		orderDate = h.clock.Now()
	}

	return h.repo.Create(ctx, func(id kernel.ID) (*order.Order, error) {
		return order.NewOrder(id, cmd.ProductID(), cmd.Quantity(), orderDate, cmd.DeliveryDate())
	})
}
