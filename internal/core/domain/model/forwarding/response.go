package forwarding

import (
	"time"

	"github.com/shopspring/decimal"
)

// Response holds the carrier assignment recorded against an order.
type Response struct {
	DriverName    string
	DriverSurname string
	DriverPhone   string
	VehicleNumber string

	DeliveryPrice decimal.Decimal
	// CostPerTransport is the share of the price attributed to one shipment when
	// several orders travel together.
	CostPerTransport decimal.NullDecimal
	DistanceKm       int
	PricePerKm       decimal.Decimal

	AdminNotes string

	IsAutoGenerated   bool
	SourceTransportID int64

	DateChanged          bool
	NewDeliveryDate      *time.Time
	OriginalDeliveryDate *time.Time
}

// IsEmpty reports whether no carrier data is present.
func (r Response) IsEmpty() bool {
	return r.DriverName == "" &&
		r.DriverSurname == "" &&
		r.DriverPhone == "" &&
		r.VehicleNumber == "" &&
		r.DeliveryPrice.IsZero() &&
		!r.CostPerTransport.Valid &&
		r.DistanceKm == 0 &&
		r.AdminNotes == "" &&
		!r.DateChanged
}

// PerShipmentCost is the cost attributed to a single shipment.
func (r Response) PerShipmentCost() decimal.Decimal {
	if r.CostPerTransport.Valid {
		return r.CostPerTransport.Decimal
	}
	return r.DeliveryPrice
}

// PricePerKmFor divides cost by distance, rounded to two places. Zero distance yields zero.
func PricePerKmFor(cost decimal.Decimal, distanceKm int) decimal.Decimal {
	if distanceKm <= 0 {
		return decimal.Zero
	}
	return cost.Div(decimal.NewFromInt(int64(distanceKm))).Round(2)
}

// withDerivedPricePerKm fills PricePerKm from price and distance when the caller
// left it unset.
func (r Response) withDerivedPricePerKm() Response {
	if r.PricePerKm.IsZero() && r.DistanceKm > 0 {
		r.PricePerKm = PricePerKmFor(r.DeliveryPrice, r.DistanceKm)
	}
	return r
}

// DeriveFor builds the auto-generated response a connected order receives from
// this response.
func (r Response) DeriveFor(target *Order, sourceOrderID int64) Response {
	cost := r.PerShipmentCost()
	distance := target.details.DistanceKm

	derived := Response{
		DriverName:        r.DriverName,
		DriverSurname:     r.DriverSurname,
		DriverPhone:       r.DriverPhone,
		VehicleNumber:     r.VehicleNumber,
		DeliveryPrice:     cost,
		DistanceKm:        distance,
		PricePerKm:        PricePerKmFor(cost, distance),
		IsAutoGenerated:   true,
		SourceTransportID: sourceOrderID,
	}

	if r.DateChanged && r.NewDeliveryDate != nil {
		newDate := *r.NewDeliveryDate
		original := target.details.DeliveryDate
		derived.DateChanged = true
		derived.NewDeliveryDate = &newDate
		derived.OriginalDeliveryDate = &original
	}
	return derived
}
