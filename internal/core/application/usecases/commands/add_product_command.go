package commands

import (
	"errors"

	"supplychain/internal/pkg/guard"
	"supplychain/internal/pkg/validation"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

type productFields struct {
	Name        string  `json:"name" validate:"required,utf8,max=128"`
	Description string  `json:"description" validate:"utf8,max=512"`
	Price       float64 `json:"price" validate:"gt=0"`
	Quantity    uint32  `json:"quantity" validate:"gt=0"`
}

// AddProductCommand represents a request to add a product to the catalogue.
//
// Example:
//
//	cmd, err := NewAddProductCommand("Widget", "", 9.99, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//	p, err := handler.Handle(ctx, cmd)
type AddProductCommand struct { //nolint:recvcheck //using for validation
	fields productFields

	guard guard.ConstructorGuard
}

// NewAddProductCommand validates the payload: name is required, price and quantity
// must be positive and the strings must fit a stored record.
func NewAddProductCommand(name, description string, price float64, quantity uint32) (AddProductCommand, error) {
	fields := productFields{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
	if err := validation.Struct(fields); err != nil {
		return AddProductCommand{}, err
	}

	return AddProductCommand{
		fields: fields,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

func (c AddProductCommand) Name() string {
	return c.fields.Name
}

func (c AddProductCommand) Description() string {
	return c.fields.Description
}

func (c AddProductCommand) Price() float64 {
	return c.fields.Price
}

func (c AddProductCommand) Quantity() uint32 {
	return c.fields.Quantity
}
