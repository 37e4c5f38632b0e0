package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand overwrites the order reference and shipping details of a shipment.
// Status and location proofs can only change through UpdateShipmentStatusCommand.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	id     kernel.ID
	fields shipmentFields

	guard guard.ConstructorGuard
}

func NewUpdateShipmentCommand(id kernel.ID, orderID kernel.ID, shippingDetails string) UpdateShipmentCommand {
	return UpdateShipmentCommand{
		id: id,
		fields: shipmentFields{
			OrderID:         orderID,
			ShippingDetails: shippingDetails,
		},
		guard: guard.NewConstructorGuard(),
	}
}

func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

func (c UpdateShipmentCommand) ID() kernel.ID {
	return c.id
}

func (c UpdateShipmentCommand) OrderID() kernel.ID {
	return c.fields.OrderID
}

func (c UpdateShipmentCommand) ShippingDetails() string {
	return c.fields.ShippingDetails
}
