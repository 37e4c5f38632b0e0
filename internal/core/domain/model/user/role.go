package user

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Role is the access class of a user account.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	Unknown Role = iota
	Admin
	Supplier
	Customer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:  "Unknown",
		Admin:    "Admin",
		Supplier: "Supplier",
		Customer: "Customer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:    "Admin",
		Supplier: "Supplier",
		Customer: "Customer",
	}
}

// ParseRole converts "Admin", "Supplier" or "Customer" to a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
