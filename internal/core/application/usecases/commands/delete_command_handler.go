package commands

import (
	"context"

	"supplychain/internal/core/ports"
)

// DeleteCommandHandler deletes records of one entity type and returns the removed record.
//
// Example:
//
//	h := NewDeleteCommandHandler[*product.Product](repos.Products)
//	removed, err := h.Handle(ctx, NewDeleteCommand(id))
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nothing was stored under id
//	}
type DeleteCommandHandler[T ports.Entity] struct {
	repo ports.Repository[T]
}

func NewDeleteCommandHandler[T ports.Entity](repo ports.Repository[T]) DeleteCommandHandler[T] {
	return DeleteCommandHandler[T]{repo: repo}
}

func (h *DeleteCommandHandler[T]) Handle(ctx context.Context, cmd DeleteCommand) (T, error) {
	if err := cmd.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return h.repo.Delete(ctx, cmd.ID())
}
