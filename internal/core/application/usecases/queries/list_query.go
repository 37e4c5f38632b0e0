package queries

import (
	"errors"

	"supplychain/internal/pkg/guard"
)

var ErrListQueryIsNotConstructed = errors.New("ListQuery must be created via NewListQuery constructor")

// ListQuery reads every live record of one entity type in ascending id order.
type ListQuery struct {
	guard guard.ConstructorGuard
}

func NewListQuery() ListQuery {
	return ListQuery{guard: guard.NewConstructorGuard()}
}

func (q ListQuery) Validate() error {
	return q.guard.Validate(ErrListQueryIsNotConstructed)
}
