// Package order provides the Order aggregate: a request for a quantity of one product.
//
// Key business rules:
//   - Orders reference a product by id only; the product is never looked up
//   - Quantity must be positive when the order is created
//   - The delivery date is optional and may be set or cleared by an update
package order

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

const EntityName = "order"

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a customer order.
type Order struct {
	// id is the order identifier within the order namespace
	id kernel.ID
	// productID is a soft reference into the product namespace
	productID kernel.ID
	// quantity is the number of units ordered
	quantity uint32
	// orderDate is when the order was placed
	orderDate time.Time
	// deliveryDate is when the order was delivered (nil until known)
	deliveryDate *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order for a freshly allocated id.
// Timestamps are normalised with kernel.NormalizeTime.
//
// Example:
//
//	o, err := order.NewOrder(id, productID, 3, clock.Now(), nil)
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id kernel.ID,
	productID kernel.ID,
	quantity uint32,
	orderDate time.Time,
	deliveryDate *time.Time,
) (*Order, error) {
	if quantity == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("0 is not greater than 0"))
	}

	return RestoreOrder(id, productID, quantity, orderDate, deliveryDate), nil
}

// RestoreOrder rebuilds an order from storage without applying creation rules.
func RestoreOrder(
	id kernel.ID,
	productID kernel.ID,
	quantity uint32,
	orderDate time.Time,
	deliveryDate *time.Time,
) *Order {
	o := &Order{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}
	o.Update(productID, quantity, orderDate, deliveryDate)
	return o
}

// Validate ensures the order was built by one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) ProductID() kernel.ID {
	return o.productID
}

func (o *Order) Quantity() uint32 {
	return o.quantity
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// DeliveryDate returns a copy of the delivery date, or nil when it is not set.
func (o *Order) DeliveryDate() *time.Time {
	if o.deliveryDate == nil {
		return nil
	}
	d := *o.deliveryDate
	return &d
}

// Update replaces all mutable fields. The id is kept and no rule is checked.
func (o *Order) Update(productID kernel.ID, quantity uint32, orderDate time.Time, deliveryDate *time.Time) {
	o.productID = productID
	o.quantity = quantity
	o.orderDate = kernel.NormalizeTime(orderDate)
	o.deliveryDate = nil
	if deliveryDate != nil {
		d := kernel.NormalizeTime(*deliveryDate)
		o.deliveryDate = &d
	}
}
