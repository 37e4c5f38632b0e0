package http

import (
	"time"

	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/domain/model/shipment"
	"supplychain/internal/core/domain/model/user"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ProductPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    uint32  `json:"quantity"`
}

type Product struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    uint32  `json:"quantity"`
}

func toProduct(p *product.Product) Product {
	return Product{
		ID:          p.ID().Uint64(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Quantity:    p.Quantity(),
	}
}

// OrderPayload is the body of order create and update requests.
// A missing order_date is filled with the server time on create.
type OrderPayload struct {
	ProductID    uint64     `json:"product_id"`
	Quantity     uint32     `json:"quantity"`
	OrderDate    *time.Time `json:"order_date"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

func (p OrderPayload) orderDate() time.Time {
	if p.OrderDate == nil {
		return time.Time{}
	}
	return *p.OrderDate
}

type Order struct {
	ID           uint64     `json:"id"`
	ProductID    uint64     `json:"product_id"`
	Quantity     uint32     `json:"quantity"`
	OrderDate    time.Time  `json:"order_date"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

func toOrder(o *order.Order) Order {
	return Order{
		ID:           o.ID().Uint64(),
		ProductID:    o.ProductID().Uint64(),
		Quantity:     o.Quantity(),
		OrderDate:    o.OrderDate(),
		DeliveryDate: o.DeliveryDate(),
	}
}

type ShipmentPayload struct {
	OrderID         uint64 `json:"order_id"`
	ShippingDetails string `json:"shipping_details"`
}

type LocationProof struct {
	Timestamp    time.Time `json:"timestamp"`
	LocationData string    `json:"location_data"`
	Verifier     string    `json:"verifier"`
}

func toLocationProofs(proofs []shipment.LocationProof) []LocationProof {
	out := make([]LocationProof, 0, len(proofs))
	for _, p := range proofs {
		out = append(out, LocationProof{
			Timestamp:    p.Timestamp(),
			LocationData: p.LocationData(),
			Verifier:     p.Verifier(),
		})
	}
	return out
}

type Shipment struct {
	ID              uint64          `json:"id"`
	OrderID         uint64          `json:"order_id"`
	ShippingDetails string          `json:"shipping_details"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at"`
	LocationProofs  []LocationProof `json:"location_proofs"`
}

func toShipment(s *shipment.Shipment) Shipment {
	return Shipment{
		ID:              s.ID().Uint64(),
		OrderID:         s.OrderID().Uint64(),
		ShippingDetails: s.ShippingDetails(),
		Status:          s.Status().String(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
		LocationProofs:  toLocationProofs(s.LocationProofs()),
	}
}

// StatusUpdatePayload carries the new status and the proof appended with it.
// A proof without timestamp is stamped with the server time.
type StatusUpdatePayload struct {
	Status string `json:"status"`
	Proof  struct {
		Timestamp    *time.Time `json:"timestamp"`
		LocationData string     `json:"location_data"`
		Verifier     string     `json:"verifier"`
	} `json:"proof"`
}

type ShipmentStatus struct {
	ID        uint64     `json:"id"`
	Status    string     `json:"status"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func toShipmentStatus(r queries.GetShipmentStatusQueryResponse) ShipmentStatus {
	return ShipmentStatus{
		ID:        r.ID.Uint64(),
		Status:    r.Status.String(),
		UpdatedAt: r.UpdatedAt,
	}
}

type UserPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toUser(u *user.User) User {
	return User{
		ID:       u.ID().Uint64(),
		Username: u.Username(),
		Email:    u.Email(),
		Role:     u.Role().String(),
	}
}

func mapSlice[T, R any](items []T, f func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, f(item))
	}
	return out
}
