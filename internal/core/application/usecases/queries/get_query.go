package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrGetQueryIsNotConstructed = errors.New("GetQuery must be created via NewGetQuery constructor")

// GetQuery reads one record by id. The same query value serves every entity type;
// the handler decides which store is read.
//
// Example:
//
//	query := NewGetQuery(id)
//	handler := NewGetQueryHandler[*product.Product](repos.Products)
//
//	p, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no product with this id
//	}
type GetQuery struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

func NewGetQuery(id kernel.ID) GetQuery {
	return GetQuery{id: id, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetQuery) Validate() error {
	return q.guard.Validate(ErrGetQueryIsNotConstructed)
}

func (q GetQuery) ID() kernel.ID {
	return q.id
}
