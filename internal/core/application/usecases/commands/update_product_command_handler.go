package commands

import (
	"context"

	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/ports"
)

type UpdateProductCommandHandler struct {
	repo ports.ProductRepository
}

func NewUpdateProductCommandHandler(repo ports.ProductRepository) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{repo: repo}
}

// Handle returns errs.ObjectNotFoundError when no product has the id.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.repo.Update(ctx, cmd.ID(), func(p *product.Product) error {
		p.Update(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Quantity())
		return nil
	})
}
