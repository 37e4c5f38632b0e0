package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand overwrites every field of an existing product.
// The payload is not validated; only the stored record size is bounded.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	id     kernel.ID
	fields productFields

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(
	id kernel.ID,
	name, description string,
	price float64,
	quantity uint32,
) UpdateProductCommand {
	return UpdateProductCommand{
		id: id,
		fields: productFields{
			Name:        name,
			Description: description,
			Price:       price,
			Quantity:    quantity,
		},
		guard: guard.NewConstructorGuard(),
	}
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ID() kernel.ID {
	return c.id
}

func (c UpdateProductCommand) Name() string {
	return c.fields.Name
}

func (c UpdateProductCommand) Description() string {
	return c.fields.Description
}

func (c UpdateProductCommand) Price() float64 {
	return c.fields.Price
}

func (c UpdateProductCommand) Quantity() uint32 {
	return c.fields.Quantity
}
