// Package product provides the Product aggregate: a catalogue item with a price and
// an on-hand quantity. Products are leaf entities with no outgoing references.
package product

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// EntityName names the product namespace in errors and region tags.
const EntityName = "product"

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is a catalogue item.
//
// Invariants at creation:
//   - name is not empty
//   - price is greater than 0
//   - quantity is greater than 0
//
// Updates overwrite every field without re-checking these rules.
type Product struct {
	id          kernel.ID
	name        string
	description string
	price       float64
	quantity    uint32

	guard guard.ConstructorGuard
}

// NewProduct creates a product for a freshly allocated id.
//
// Example:
//
//	p, err := product.NewProduct(id, "Widget", "", 9.99, 10)
//	if err != nil {
//	    return err
//	}
func NewProduct(id kernel.ID, name, description string, price float64, quantity uint32) (*Product, error) {
	p := &Product{
		id:          id,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product from storage without applying creation rules.
func RestoreProduct(id kernel.ID, name, description string, price float64, quantity uint32) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the product was built by one of its constructors.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.ID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() float64 {
	return p.price
}

func (p *Product) Quantity() uint32 {
	return p.quantity
}

// Update replaces all mutable fields. The id is kept.
func (p *Product) Update(name, description string, price float64, quantity uint32) {
	p.name = name
	p.description = description
	p.price = price
	p.quantity = quantity
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if !(price > 0) {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity uint32) error {
	if quantity == 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("0 is not greater than 0"))
	}
	p.quantity = quantity
	return nil
}
