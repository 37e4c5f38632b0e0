// Package supplier provides the Supplier aggregate. Suppliers are stored and audited
// alongside the other entities but no use case reads or writes them yet.
package supplier

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

const EntityName = "supplier"

var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier or RestoreSupplier constructor")

type Supplier struct {
	id          kernel.ID
	name        string
	contactInfo string

	guard guard.ConstructorGuard
}

// NewSupplier creates a supplier; the name is required.
func NewSupplier(id kernel.ID, name, contactInfo string) (*Supplier, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Supplier{
		id:          id,
		name:        name,
		contactInfo: contactInfo,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func RestoreSupplier(id kernel.ID, name, contactInfo string) *Supplier {
	return &Supplier{
		id:          id,
		name:        name,
		contactInfo: contactInfo,
		guard:       guard.NewConstructorGuard(),
	}
}

func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

func (s *Supplier) ID() kernel.ID {
	return s.id
}

func (s *Supplier) Name() string {
	return s.name
}

func (s *Supplier) ContactInfo() string {
	return s.contactInfo
}
