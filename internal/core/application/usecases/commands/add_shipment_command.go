package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
	"supplychain/internal/pkg/validation"
)

var ErrAddShipmentCommandIsNotConstructed = errors.New(
	"AddShipmentCommand must be created via NewAddShipmentCommand constructor",
)

type shipmentFields struct {
	OrderID         kernel.ID `json:"order_id"`
	ShippingDetails string    `json:"shipping_details" validate:"required,utf8,max=256"`
}

// AddShipmentCommand represents a request to ship an order.
// New shipments are Pending, stamped with the current time and carry no proofs.
type AddShipmentCommand struct { //nolint:recvcheck //using for validation
	fields shipmentFields

	guard guard.ConstructorGuard
}

func NewAddShipmentCommand(orderID kernel.ID, shippingDetails string) (AddShipmentCommand, error) {
	fields := shipmentFields{
		OrderID:         orderID,
		ShippingDetails: shippingDetails,
	}
	if err := validation.Struct(fields); err != nil {
		return AddShipmentCommand{}, err
	}

	return AddShipmentCommand{
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c AddShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentCommandIsNotConstructed)
}

func (c AddShipmentCommand) OrderID() kernel.ID {
	return c.fields.OrderID
}

func (c AddShipmentCommand) ShippingDetails() string {
	return c.fields.ShippingDetails
}
