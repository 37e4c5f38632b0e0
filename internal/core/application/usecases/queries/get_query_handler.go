package queries

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/model/user"
	"supplychain/internal/core/ports"
)

// EntityGetter is the read side of ports.Repository used by id lookups.
type EntityGetter[T ports.Entity] interface {
	Get(ctx context.Context, id kernel.ID) (T, error)
}

// GetQueryHandler returns the record stored under the query id,
// or errs.ObjectNotFoundError when there is none.
type GetQueryHandler[T ports.Entity] struct {
	repo EntityGetter[T]
}

func NewGetQueryHandler[T ports.Entity](repo EntityGetter[T]) GetQueryHandler[T] {
	return GetQueryHandler[T]{repo: repo}
}

func (h GetQueryHandler[T]) Handle(ctx context.Context, query GetQuery) (T, error) {
	if err := query.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return h.repo.Get(ctx, query.ID())
}

type (
	GetProductQueryHandler  = GetQueryHandler[*product.Product]
	GetOrderQueryHandler    = GetQueryHandler[*order.Order]
	GetShipmentQueryHandler = GetQueryHandler[*shipment.Shipment]
	GetUserQueryHandler     = GetQueryHandler[*user.User]
)
