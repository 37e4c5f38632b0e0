package queries

import (
	"context"

	"supplychain/internal/core/ports"
)

type EntityLister[T ports.Entity] interface {
	List(ctx context.Context) ([]T, error)
}

// ListQueryHandler returns all records of one store. A single undecodable record fails
// the whole listing with errs.RecordIsCorruptedError.
type ListQueryHandler[T ports.Entity] struct {
	repo EntityLister[T]
}

func NewListQueryHandler[T ports.Entity](repo EntityLister[T]) ListQueryHandler[T] {
	return ListQueryHandler[T]{repo: repo}
}

func (h ListQueryHandler[T]) Handle(ctx context.Context, query ListQuery) ([]T, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}
