package records

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/supplier"
)

type SupplierRecord struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type SupplierCodec struct{}

func (SupplierCodec) Encode(s *supplier.Supplier) ([]byte, error) {
	if err := checkText(textField{"name", s.Name()}, textField{"contact_info", s.ContactInfo()}); err != nil {
		return nil, err
	}
	return encode(SupplierRecord{
		ID:          s.ID().Uint64(),
		Name:        s.Name(),
		ContactInfo: s.ContactInfo(),
	})
}

func (SupplierCodec) Decode(data []byte) (*supplier.Supplier, error) {
	var r SupplierRecord
	if err := decode(data, &r); err != nil {
		return nil, err
	}
	return supplier.RestoreSupplier(kernel.ID(r.ID), r.Name, r.ContactInfo), nil
}
