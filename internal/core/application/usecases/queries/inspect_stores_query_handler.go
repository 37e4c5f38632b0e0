package queries

import (
	"context"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
)

// StoreInspector reports the state of every entity store, in a fixed order.
type StoreInspector interface {
	Stats(ctx context.Context) ([]ports.StoreStats, error)
}

type InspectStoresQueryHandler struct {
	stores StoreInspector
}

func NewInspectStoresQueryHandler(stores StoreInspector) InspectStoresQueryHandler {
	return InspectStoresQueryHandler{stores: stores}
}

// Handle reads the stores once. Corrupt records are part of the answer, not an error.
func (h InspectStoresQueryHandler) Handle(
	ctx context.Context,
	query InspectStoresQuery,
) ([]InspectStoresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats, err := h.stores.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("inspect stores: %w", err)
	}

	reports := make([]InspectStoresQueryResponse, 0, len(stats))
	for _, s := range stats {
		corrupt := s.Corrupt
		if corrupt == nil {
			corrupt = make([]kernel.ID, 0)
		}
		reports = append(reports, InspectStoresQueryResponse{
			Entity:  s.Entity,
			NextID:  s.NextID,
			Records: s.Records,
			Corrupt: corrupt,
		})
	}
	return reports, nil
}
