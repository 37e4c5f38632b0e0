package http

import (
	"net/http"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListShipments(ctx echo.Context) error {
	shipments, err := s.h.ListShipments.Handle(ctx.Request().Context(), queries.NewListQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, mapSlice(shipments, toShipment))
}

// CreateShipment handles POST /api/v1/shipments. New shipments are Pending.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var payload ShipmentPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddShipmentCommand(kernel.ID(payload.OrderID), payload.ShippingDetails)
	if err != nil {
		return s.fail(ctx, err)
	}

	sh, err := s.h.AddShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toShipment(sh))
}

func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	sh, err := s.h.GetShipment.Handle(ctx.Request().Context(), queries.NewGetQuery(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipment(sh))
}

func (s *Server) UpdateShipment(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var payload ShipmentPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewUpdateShipmentCommand(id, kernel.ID(payload.OrderID), payload.ShippingDetails)
	sh, err := s.h.UpdateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipment(sh))
}

func (s *Server) DeleteShipment(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	sh, err := s.h.DeleteShipment.Handle(ctx.Request().Context(), commands.NewDeleteCommand(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipment(sh))
}

// UpdateShipmentStatus handles PUT /api/v1/shipments/{id}/status.
// Any defined status is accepted and the proof is appended even when the status is unchanged.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var payload StatusUpdatePayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := shipment.ParseStatus(payload.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	var timestamp time.Time
	if payload.Proof.Timestamp != nil {
		timestamp = *payload.Proof.Timestamp
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(
		id, status, timestamp, payload.Proof.LocationData, payload.Proof.Verifier)
	if err != nil {
		return s.fail(ctx, err)
	}

	sh, err := s.h.UpdateShipmentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipment(sh))
}

func (s *Server) GetShipmentStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := s.h.GetShipmentStatus.Handle(ctx.Request().Context(), queries.NewGetShipmentStatusQuery(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipmentStatus(status))
}

func (s *Server) GetShipmentLocationProofs(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	proofs, err := s.h.GetShipmentLocationProofs.Handle(
		ctx.Request().Context(), queries.NewGetShipmentLocationProofsQuery(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toLocationProofs(proofs))
}
