package commands

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/ports"
)

type UpdateShipmentCommandHandler struct {
	repo  ports.ShipmentRepository
	clock kernel.Clock
}

func NewUpdateShipmentCommandHandler(repo ports.ShipmentRepository, clock kernel.Clock) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{repo: repo, clock: clock}
}

// Handle stamps updated_at with the handler clock.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.repo.Update(ctx, cmd.ID(), func(s *shipment.Shipment) error {
		s.Update(cmd.OrderID(), cmd.ShippingDetails(), h.clock.Now())
		return nil
	})
}
