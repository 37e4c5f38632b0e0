package http

import (
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), queries.NewListQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(orders, toOrder))
}

// CreateOrder handles POST /api/v1/orders. product_id is not checked against the product store.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var payload OrderPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddOrderCommand(
		kernel.ID(payload.ProductID), payload.Quantity, payload.orderDate(), payload.DeliveryDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.AddOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrder(o))
}

func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), queries.NewGetQuery(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var payload OrderPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewUpdateOrderCommand(
		id, kernel.ID(payload.ProductID), payload.Quantity, payload.orderDate(), payload.DeliveryDate)
	o, err := s.h.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.DeleteOrder.Handle(ctx.Request().Context(), commands.NewDeleteCommand(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}
