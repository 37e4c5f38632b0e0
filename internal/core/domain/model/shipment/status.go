package shipment

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status represents where a shipment is in its physical journey.
//
// Nominal flow:
//
//	Pending ──> Shipped ──> InTransit ──> Delivered
//	   │           │            │
//	   └───────────┴────────────┴──────> Canceled
//
// The flow is descriptive only. Shipment.UpdateStatus accepts any defined status
// from any current status; callers own transition validity.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status every shipment is created with.
	Pending

	// Shipped indicates the shipment left the origin.
	Shipped

	// InTransit indicates the shipment is moving between checkpoints.
	InTransit

	// Delivered indicates the shipment reached its destination.
	Delivered

	// Canceled indicates the shipment was abandoned.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Shipped:   "Shipped",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Shipped:   "Shipped",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// DefaultStatus is the status assigned at creation. It is used by NewShipment only.
func DefaultStatus() Status {
	return Pending
}

// ParseStatus converts a status name ("Pending", "Shipped", "InTransit", "Delivered",
// "Canceled") to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the five defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for undefined values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether s ends the nominal flow.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}
