package queries

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/pkg/guard"
)

var ErrGetShipmentStatusQueryIsNotConstructed = errors.New(
	"GetShipmentStatusQuery must be created via NewGetShipmentStatusQuery constructor",
)

// GetShipmentStatusQuery reads the current status of one shipment.
type GetShipmentStatusQuery struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

func NewGetShipmentStatusQuery(id kernel.ID) GetShipmentStatusQuery {
	return GetShipmentStatusQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetShipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatusQueryIsNotConstructed)
}

func (q GetShipmentStatusQuery) ID() kernel.ID {
	return q.id
}

// GetShipmentStatusQueryResponse is the status projection of a shipment.
// UpdatedAt is nil until the shipment is first mutated.
type GetShipmentStatusQueryResponse struct {
	ID        kernel.ID
	Status    shipment.Status
	UpdatedAt *time.Time
}
