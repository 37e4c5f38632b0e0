package commands

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/ports"
)

// AddProductCommandHandler allocates a product id and stores the new product.
type AddProductCommandHandler struct {
	repo ports.ProductRepository
}

func NewAddProductCommandHandler(repo ports.ProductRepository) AddProductCommandHandler {
	return AddProductCommandHandler{repo: repo}
}

// Handle allocates the id only once the product is valid and fits a stored record.
// If the write itself fails the id stays allocated and is never reissued.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.repo.Create(ctx, func(id kernel.ID) (*product.Product, error) {
		return product.NewProduct(id, cmd.Name(), cmd.Description(), cmd.Price(), cmd.Quantity())
	})
}
