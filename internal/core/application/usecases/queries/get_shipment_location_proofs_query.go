package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrGetShipmentLocationProofsQueryIsNotConstructed = errors.New(
	"GetShipmentLocationProofsQuery must be created via NewGetShipmentLocationProofsQuery constructor",
)

// GetShipmentLocationProofsQuery reads the audit trail of one shipment.
//
// Example:
//
//	handler := NewGetShipmentLocationProofsQueryHandler(repos.Shipments)
//	proofs, err := handler.Handle(ctx, NewGetShipmentLocationProofsQuery(id))
//	if err != nil {
//	    return err
//	}
//	for _, p := range proofs {
//	    fmt.Println(p.Timestamp(), p.LocationData(), p.Verifier())
//	}
type GetShipmentLocationProofsQuery struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

func NewGetShipmentLocationProofsQuery(id kernel.ID) GetShipmentLocationProofsQuery {
	return GetShipmentLocationProofsQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetShipmentLocationProofsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentLocationProofsQueryIsNotConstructed)
}

func (q GetShipmentLocationProofsQuery) ID() kernel.ID {
	return q.id
}
