package commands

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/ports"
)

type AddShipmentCommandHandler struct {
	repo  ports.ShipmentRepository
	clock kernel.Clock
}

func NewAddShipmentCommandHandler(repo ports.ShipmentRepository, clock kernel.Clock) AddShipmentCommandHandler {
	return AddShipmentCommandHandler{repo: repo, clock: clock}
}

func (h *AddShipmentCommandHandler) Handle(ctx context.Context, cmd AddShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return h.repo.Create(ctx, func(id kernel.ID) (*shipment.Shipment, error) {
		return shipment.NewShipment(id, cmd.OrderID(), cmd.ShippingDetails(), now)
	})
}
