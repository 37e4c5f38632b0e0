// Package http exposes the entity operations as a JSON API over echo.
package http

import (
	"log/slog"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/model/user"
)

// Handlers are the use cases served by the API.
type Handlers struct {
	AddProduct    commands.AddProductCommandHandler
	UpdateProduct commands.UpdateProductCommandHandler
	DeleteProduct commands.DeleteCommandHandler[*product.Product]
	GetProduct    queries.GetProductQueryHandler
	ListProducts  queries.ListQueryHandler[*product.Product]

	AddOrder    commands.AddOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteCommandHandler[*order.Order]
	GetOrder    queries.GetOrderQueryHandler
	ListOrders  queries.ListQueryHandler[*order.Order]

	AddShipment               commands.AddShipmentCommandHandler
	UpdateShipment            commands.UpdateShipmentCommandHandler
	UpdateShipmentStatus      commands.UpdateShipmentStatusCommandHandler
	DeleteShipment            commands.DeleteCommandHandler[*shipment.Shipment]
	GetShipment               queries.GetShipmentQueryHandler
	ListShipments             queries.ListQueryHandler[*shipment.Shipment]
	GetShipmentStatus         queries.GetShipmentStatusQueryHandler
	GetShipmentLocationProofs queries.GetShipmentLocationProofsQueryHandler

	AddUser    commands.AddUserCommandHandler
	UpdateUser commands.UpdateUserCommandHandler
	DeleteUser commands.DeleteCommandHandler[*user.User]
	GetUser    queries.GetUserQueryHandler
	ListUsers  queries.ListQueryHandler[*user.User]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}
