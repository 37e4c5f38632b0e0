package queries

import (
	"context"

	"supplychain/internal/core/domain/model/shipment"
)

type GetShipmentLocationProofsQueryHandler struct {
	repo EntityGetter[*shipment.Shipment]
}

func NewGetShipmentLocationProofsQueryHandler(
	repo EntityGetter[*shipment.Shipment],
) GetShipmentLocationProofsQueryHandler {
	return GetShipmentLocationProofsQueryHandler{repo: repo}
}

// Handle returns the proofs in submission order. A shipment without proofs yields an
// empty, non-nil slice.
func (h GetShipmentLocationProofsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentLocationProofsQuery,
) ([]shipment.LocationProof, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s, err := h.repo.Get(ctx, query.ID())
	if err != nil {
		return nil, err
	}
	return s.LocationProofs(), nil
}
