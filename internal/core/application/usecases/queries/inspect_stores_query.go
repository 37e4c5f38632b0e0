package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrInspectStoresQueryIsNotConstructed = errors.New(
	"InspectStoresQuery must be created via NewInspectStoresQuery constructor",
)

// InspectStoresQuery walks every entity store and reports allocation, occupancy and
// records that no longer decode. It is used by the audit job and the audit command.
type InspectStoresQuery struct {
	guard guard.ConstructorGuard
}

func NewInspectStoresQuery() InspectStoresQuery {
	return InspectStoresQuery{guard: guard.NewConstructorGuard()}
}

func (q InspectStoresQuery) Validate() error {
	return q.guard.Validate(ErrInspectStoresQueryIsNotConstructed)
}

// InspectStoresQueryResponse describes one entity store.
type InspectStoresQueryResponse struct {
	Entity  string      `json:"entity"`
	NextID  kernel.ID   `json:"next_id"`
	Records int         `json:"records"`
	Corrupt []kernel.ID `json:"corrupt"`
}

// Healthy reports whether every stored record decodes.
func (r InspectStoresQueryResponse) Healthy() bool {
	return len(r.Corrupt) == 0
}
