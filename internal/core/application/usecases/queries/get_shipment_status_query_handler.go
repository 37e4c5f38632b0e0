package queries

import (
	"context"

	"supplychain/internal/core/domain/model/shipment"
)

type GetShipmentStatusQueryHandler struct {
	repo EntityGetter[*shipment.Shipment]
}

func NewGetShipmentStatusQueryHandler(repo EntityGetter[*shipment.Shipment]) GetShipmentStatusQueryHandler {
	return GetShipmentStatusQueryHandler{repo: repo}
}

// Handle fails with errs.ObjectNotFoundError exactly when a shipment lookup would.
func (h GetShipmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatusQuery,
) (GetShipmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	s, err := h.repo.Get(ctx, query.ID())
	if err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	return GetShipmentStatusQueryResponse{
		ID:        s.ID(),
		Status:    s.Status(),
		UpdatedAt: s.UpdatedAt(),
	}, nil
}
