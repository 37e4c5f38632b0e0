package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.h.ListProducts.Handle(ctx.Request().Context(), queries.NewListQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(products, toProduct))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var payload ProductPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddProductCommand(payload.Name, payload.Description, payload.Price, payload.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.h.AddProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toProduct(p))
}

// GetProduct handles GET /api/v1/products/{id}.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.h.GetProduct.Handle(ctx.Request().Context(), queries.NewGetQuery(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProduct(p))
}

// UpdateProduct handles PUT /api/v1/products/{id}. The payload is stored as given.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var payload ProductPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewUpdateProductCommand(id, payload.Name, payload.Description, payload.Price, payload.Quantity)
	p, err := s.h.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProduct(p))
}

// DeleteProduct handles DELETE /api/v1/products/{id} and returns the removed record.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.h.DeleteProduct.Handle(ctx.Request().Context(), commands.NewDeleteCommand(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProduct(p))
}
