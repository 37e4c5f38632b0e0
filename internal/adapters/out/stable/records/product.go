package records

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"
)

type ProductRecord struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    uint32  `json:"quantity"`
}

type ProductCodec struct{}

func (ProductCodec) Encode(p *product.Product) ([]byte, error) {
	if err := checkText(
		textField{"name", p.Name()},
		textField{"description", p.Description()},
	); err != nil {
		return nil, err
	}
	return encode(ProductRecord{
		ID:          p.ID().Uint64(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Quantity:    p.Quantity(),
	})
}

func (ProductCodec) Decode(data []byte) (*product.Product, error) {
	var r ProductRecord
	if err := decode(data, &r); err != nil {
		return nil, err
	}
	return product.RestoreProduct(kernel.ID(r.ID), r.Name, r.Description, r.Price, r.Quantity), nil
}
