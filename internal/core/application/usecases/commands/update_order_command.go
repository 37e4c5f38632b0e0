package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand overwrites every field of an existing order, including
// clearing the delivery date when deliveryDate is nil.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	id     kernel.ID
	fields orderFields

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	id kernel.ID,
	productID kernel.ID,
	quantity uint32,
	orderDate time.Time,
	deliveryDate *time.Time,
) UpdateOrderCommand {
	return UpdateOrderCommand{
		id: id,
		fields: orderFields{
			ProductID:    productID,
			Quantity:     quantity,
			OrderDate:    orderDate,
			DeliveryDate: deliveryDate,
		},
		guard: guard.NewConstructorGuard(),
	}
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) ID() kernel.ID {
	return c.id
}

func (c UpdateOrderCommand) ProductID() kernel.ID {
	return c.fields.ProductID
}

func (c UpdateOrderCommand) Quantity() uint32 {
	return c.fields.Quantity
}

func (c UpdateOrderCommand) OrderDate() time.Time {
	return c.fields.OrderDate
}

func (c UpdateOrderCommand) DeliveryDate() *time.Time {
	return c.fields.DeliveryDate
}
