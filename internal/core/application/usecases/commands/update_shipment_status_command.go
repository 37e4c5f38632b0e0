package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand sets a shipment's status and submits one location proof.
//
// Any defined status is accepted regardless of the current one, and the proof is
// appended even when the status does not change.
//
// Example:
//
//	cmd, err := NewUpdateShipmentStatusCommand(id, shipment.InTransit, time.Time{}, "dock 7", "scanner-1")
//	if err != nil {
//	    return err // undefined status
//	}
//	s, err := handler.Handle(ctx, cmd)
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	id     kernel.ID
	status shipment.Status
	proof  shipment.LocationProof

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand rejects undefined statuses. A zero timestamp is
// replaced with the handler clock's current time.
func NewUpdateShipmentStatusCommand(
	id kernel.ID,
	status shipment.Status,
	timestamp time.Time,
	locationData string,
	verifier string,
) (UpdateShipmentStatusCommand, error) {
	if err := status.Validate(); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return UpdateShipmentStatusCommand{
		id:     id,
		status: status,
		proof:  shipment.NewLocationProof(timestamp, locationData, verifier),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

func (c UpdateShipmentStatusCommand) ID() kernel.ID {
	return c.id
}

func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c UpdateShipmentStatusCommand) Proof() shipment.LocationProof {
	return c.proof
}
