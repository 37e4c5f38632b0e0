package shipment

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrLocationProofIsNotConstructed = errors.New("LocationProof must be created via NewLocationProof constructor")

// LocationProof is an immutable claim that a shipment was at a place at a time,
// attested by a verifier. A proof belongs to exactly one shipment.
type LocationProof struct { //nolint:recvcheck //using for validation
	timestamp    time.Time
	locationData string
	verifier     string

	guard guard.ConstructorGuard
}

// NewLocationProof creates a proof. The timestamp is normalised with kernel.NormalizeTime.
func NewLocationProof(timestamp time.Time, locationData, verifier string) LocationProof {
	return LocationProof{
		timestamp:    kernel.NormalizeTime(timestamp),
		locationData: locationData,
		verifier:     verifier,
		guard:        guard.NewConstructorGuard(),
	}
}

func (p LocationProof) Validate() error {
	return p.guard.Validate(ErrLocationProofIsNotConstructed)
}

func (p LocationProof) Timestamp() time.Time {
	return p.timestamp
}

func (p LocationProof) LocationData() string {
	return p.locationData
}

func (p LocationProof) Verifier() string {
	return p.verifier
}

// Stamped returns a copy of p with the timestamp set to at when p has none.
func (p LocationProof) Stamped(at time.Time) LocationProof {
	if !p.timestamp.IsZero() {
		return p
	}
	return NewLocationProof(at, p.locationData, p.verifier)
}
