package commands

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/ports"
)

// UpdateShipmentStatusCommandHandler applies a status update as one read-modify-write
// of the shipment record, so concurrent updates never drop a proof.
type UpdateShipmentStatusCommandHandler struct {
	repo  ports.ShipmentRepository
	clock kernel.Clock
}

func NewUpdateShipmentStatusCommandHandler(
	repo ports.ShipmentRepository,
	clock kernel.Clock,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{repo: repo, clock: clock}
}

// Handle returns errs.ObjectNotFoundError when no shipment has the id. When the record
// with the new proof would exceed the stored size bound nothing is changed.
func (h *UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.repo.Update(ctx, cmd.ID(), func(s *shipment.Shipment) error {
		now := h.clock.Now()
		return s.UpdateStatus(cmd.Status(), cmd.Proof().Stamped(now), now)
	})
}
