package records

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
)

type OrderRecord struct {
	ID           uint64     `json:"id"`
	ProductID    uint64     `json:"product_id"`
	Quantity     uint32     `json:"quantity"`
	OrderDate    time.Time  `json:"order_date"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

type OrderCodec struct{}

func (OrderCodec) Encode(o *order.Order) ([]byte, error) {
	return encode(OrderRecord{
		ID:           o.ID().Uint64(),
		ProductID:    o.ProductID().Uint64(),
		Quantity:     o.Quantity(),
		OrderDate:    o.OrderDate(),
		DeliveryDate: o.DeliveryDate(),
	})
}

func (OrderCodec) Decode(data []byte) (*order.Order, error) {
	var r OrderRecord
	if err := decode(data, &r); err != nil {
		return nil, err
	}
	return order.RestoreOrder(
		kernel.ID(r.ID),
		kernel.ID(r.ProductID),
		r.Quantity,
		r.OrderDate,
		optionalTime(r.DeliveryDate),
	), nil
}
