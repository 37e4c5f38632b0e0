package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
	"supplychain/internal/pkg/validation"
)

var ErrAddOrderCommandIsNotConstructed = errors.New(
	"AddOrderCommand must be created via NewAddOrderCommand constructor",
)

type orderFields struct {
	ProductID    kernel.ID  `json:"product_id"`
	Quantity     uint32     `json:"quantity" validate:"gt=0"`
	OrderDate    time.Time  `json:"order_date"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

// AddOrderCommand represents a request to order a quantity of one product.
// The product id is not checked against the product store.
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	fields orderFields

	guard guard.ConstructorGuard
}

// NewAddOrderCommand requires a positive quantity. A zero orderDate is replaced
// with the handler clock's current time.
func NewAddOrderCommand(
	productID kernel.ID,
	quantity uint32,
	orderDate time.Time,
	deliveryDate *time.Time,
) (AddOrderCommand, error) {
	fields := orderFields{
		ProductID:    productID,
		Quantity:     quantity,
		OrderDate:    orderDate,
		DeliveryDate: deliveryDate,
	}
	if err := validation.Struct(fields); err != nil {
		return AddOrderCommand{}, err
	}

	return AddOrderCommand{
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

func (c AddOrderCommand) ProductID() kernel.ID {
	return c.fields.ProductID
}

func (c AddOrderCommand) Quantity() uint32 {
	return c.fields.Quantity
}

func (c AddOrderCommand) OrderDate() time.Time {
	return c.fields.OrderDate
}

func (c AddOrderCommand) DeliveryDate() *time.Time {
	return c.fields.DeliveryDate
}
