package records

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipment"
)

type ShipmentRecord struct {
	ID              uint64                `json:"id"`
	OrderID         uint64                `json:"order_id"`
	ShippingDetails string                `json:"shipping_details"`
	Status          string                `json:"status"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       *time.Time            `json:"updated_at"`
	LocationProofs  []LocationProofRecord `json:"location_proofs"`
}

type LocationProofRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	LocationData string    `json:"location_data"`
	Verifier     string    `json:"verifier"`
}

type ShipmentCodec struct{}

func (ShipmentCodec) Encode(s *shipment.Shipment) ([]byte, error) {
	proofs := s.LocationProofs()
	fields := []textField{{"shipping_details", s.ShippingDetails()}}
	for _, p := range proofs {
		fields = append(fields, textField{"location_data", p.LocationData()}, textField{"verifier", p.Verifier()})
	}
	if err := checkText(fields...); err != nil {
		return nil, err
	}

	r := ShipmentRecord{
		ID:              s.ID().Uint64(),
		OrderID:         s.OrderID().Uint64(),
		ShippingDetails: s.ShippingDetails(),
		Status:          s.Status().String(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
		LocationProofs:  make([]LocationProofRecord, 0, len(proofs)),
	}
	for _, p := range proofs {
		r.LocationProofs = append(r.LocationProofs, LocationProofRecord{
			Timestamp:    p.Timestamp(),
			LocationData: p.LocationData(),
			Verifier:     p.Verifier(),
		})
	}
	return encode(r)
}

func (ShipmentCodec) Decode(data []byte) (*shipment.Shipment, error) {
	var r ShipmentRecord
	if err := decode(data, &r); err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}

	proofs := make([]shipment.LocationProof, 0, len(r.LocationProofs))
	for _, p := range r.LocationProofs {
		proofs = append(proofs, shipment.NewLocationProof(p.Timestamp, p.LocationData, p.Verifier))
	}

	return shipment.RestoreShipment(
		kernel.ID(r.ID),
		kernel.ID(r.OrderID),
		r.ShippingDetails,
		status,
		r.CreatedAt,
		optionalTime(r.UpdatedAt),
		proofs,
	), nil
}
