// Package shipment provides the Shipment aggregate and its status state machine.
//
// A shipment ships one order (referenced by id only) and carries an append-only
// audit trail of location proofs. Every status update appends the submitted proof,
// even when the status does not change, so the trail records proof submissions.
//
// Key business rules:
//   - Shipments start as Pending with no proofs and no updated_at
//   - Any defined status may follow any other
//   - Proofs are never removed or reordered
//   - updated_at is set by every mutation
package shipment

import (
	"errors"
	"slices"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

const EntityName = "shipment"

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")

// Shipment is the aggregate root that owns its location proofs exclusively.
type Shipment struct {
	id              kernel.ID
	orderID         kernel.ID
	shippingDetails string
	status          Status
	createdAt       time.Time
	updatedAt       *time.Time
	locationProofs  []LocationProof

	guard guard.ConstructorGuard
}

// NewShipment creates a Pending shipment with an empty audit trail.
//
// Example:
//
//	s, err := shipment.NewShipment(id, orderID, "box A", clock.Now())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s.Status()) // Pending
func NewShipment(id kernel.ID, orderID kernel.ID, shippingDetails string, createdAt time.Time) (*Shipment, error) {
	if shippingDetails == "" {
		return nil, errs.NewValueIsRequiredError("shipping_details")
	}

	return &Shipment{
		id:              id,
		orderID:         orderID,
		shippingDetails: shippingDetails,
		status:          DefaultStatus(),
		createdAt:       kernel.NormalizeTime(createdAt),
		locationProofs:  []LocationProof{},
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreShipment rebuilds a shipment from storage without applying creation rules.
func RestoreShipment(
	id kernel.ID,
	orderID kernel.ID,
	shippingDetails string,
	status Status,
	createdAt time.Time,
	updatedAt *time.Time,
	locationProofs []LocationProof,
) *Shipment {
	s := &Shipment{
		id:              id,
		orderID:         orderID,
		shippingDetails: shippingDetails,
		status:          status,
		createdAt:       kernel.NormalizeTime(createdAt),
		locationProofs:  slices.Clone(locationProofs),
		guard:           guard.NewConstructorGuard(),
	}
	if s.locationProofs == nil {
		s.locationProofs = []LocationProof{}
	}
	if updatedAt != nil {
		u := kernel.NormalizeTime(*updatedAt)
		s.updatedAt = &u
	}
	return s
}

// Validate ensures the shipment was built by one of its constructors.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() kernel.ID {
	return s.id
}

func (s *Shipment) OrderID() kernel.ID {
	return s.orderID
}

func (s *Shipment) ShippingDetails() string {
	return s.shippingDetails
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns a copy of the last mutation time, or nil before the first mutation.
func (s *Shipment) UpdatedAt() *time.Time {
	if s.updatedAt == nil {
		return nil
	}
	u := *s.updatedAt
	return &u
}

// LocationProofs returns the audit trail in submission order.
// The returned slice is a copy; modifying it does not affect the shipment.
func (s *Shipment) LocationProofs() []LocationProof {
	return slices.Clone(s.locationProofs)
}

// Update overwrites the order reference and shipping details and stamps updated_at.
// Status and proofs are untouched.
func (s *Shipment) Update(orderID kernel.ID, shippingDetails string, now time.Time) {
	s.orderID = orderID
	s.shippingDetails = shippingDetails
	s.touch(now)
}

// UpdateStatus overwrites the status, stamps updated_at and appends proof.
// The previous status is not consulted.
func (s *Shipment) UpdateStatus(status Status, proof LocationProof, now time.Time) error {
	if err := errors.Join(status.Validate(), proof.Validate()); err != nil {
		return err
	}

	s.status = status
	s.touch(now)
	s.locationProofs = append(s.locationProofs, proof)
	return nil
}

func (s *Shipment) touch(now time.Time) {
	u := kernel.NormalizeTime(now)
	s.updatedAt = &u
}
