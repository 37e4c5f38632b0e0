package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
)

type UpdateOrderCommandHandler struct {
	repo ports.OrderRepository
}

func NewUpdateOrderCommandHandler(repo ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{repo: repo}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.repo.Update(ctx, cmd.ID(), func(o *order.Order) error {
		o.Update(cmd.ProductID(), cmd.Quantity(), cmd.OrderDate(), cmd.DeliveryDate())
		return nil
	})
}
