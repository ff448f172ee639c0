// Package forwardingrepo persists forwarding orders. Structured fields are kept
// as JSON text; rows written by older clients may hold text that does not decode,
// which is tolerated on read.
package forwardingrepo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the forwarding_orders row.
type OrderDTO struct {
	ID                 int64 `gorm:"primaryKey;autoIncrement"`
	OrderNumber        string
	Status             string
	CreatedByName      string
	CreatedByEmail     string
	ResponsiblePerson  string
	ResponsibleEmail   string
	CostCenter         string
	PickupLocation     string
	PickupAddress      datatypes.JSON `gorm:"type:text"`
	DeliveryAddress    datatypes.JSON `gorm:"type:text"`
	LoadingContact     string
	UnloadingContact   string
	DeliveryDate       time.Time `gorm:"type:date"`
	Goods              datatypes.JSON `gorm:"type:text"`
	Documents          string
	Notes              string
	Constructions      datatypes.JSON `gorm:"type:text"`
	DistanceKm         int
	MergedTransportIDs pq.Int64Array  `gorm:"column:merged_transport_ids;type:bigint[]"`
	Response           datatypes.JSON `gorm:"type:text"`
	CreatedAt          time.Time
}

func (OrderDTO) TableName() string {
	return "forwarding_orders"
}

type addressJSON struct {
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Street     string `json:"street,omitempty"`
}

type goodsJSON struct {
	Description string `json:"description"`
	Weight      string `json:"weight,omitempty"`
}

type constructionJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	MPK  string `json:"mpk,omitempty"`
}

// ResponseJSON is the stored response document. Field names follow the ones
// the surrounding system already writes.
type ResponseJSON struct {
	DriverName           string              `json:"driverName,omitempty"`
	DriverSurname        string              `json:"driverSurname,omitempty"`
	DriverPhone          string              `json:"driverPhone,omitempty"`
	VehicleNumber        string              `json:"vehicleNumber,omitempty"`
	DeliveryPrice        decimal.Decimal     `json:"deliveryPrice"`
	CostPerTransport     decimal.NullDecimal `json:"costPerTransport"`
	DistanceKm           int                 `json:"distanceKm"`
	PricePerKm           json.Number         `json:"pricePerKm,omitempty"`
	AdminNotes           string              `json:"adminNotes,omitempty"`
	IsAutoGenerated      bool                `json:"isAutoGenerated"`
	SourceTransportID    int64               `json:"sourceTransportId,omitempty"`
	DateChanged          bool                `json:"dateChanged"`
	NewDeliveryDate      *time.Time          `json:"newDeliveryDate,omitempty"`
	OriginalDeliveryDate *time.Time          `json:"originalDeliveryDate,omitempty"`
}

// blank is written for absent documents; the columns are NOT NULL.
var blank = datatypes.JSON("null")

func encode(v any) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func isBlank(raw datatypes.JSON) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

func fromAddress(a kernel.Address) addressJSON {
	return addressJSON{City: a.City(), PostalCode: a.PostalCode(), Street: a.Street()}
}

// toAddress tolerates a malformed legacy postal code by dropping it.
func (a addressJSON) toAddress() (kernel.Address, error) {
	addr, err := kernel.NewAddress(a.City, a.PostalCode, a.Street)
	if err != nil {
		return kernel.NewAddress(a.City, "", a.Street)
	}
	return addr, nil
}

func fromResponse(r forwarding.Response) ResponseJSON {
	return ResponseJSON{
		DriverName:           r.DriverName,
		DriverSurname:        r.DriverSurname,
		DriverPhone:          r.DriverPhone,
		VehicleNumber:        r.VehicleNumber,
		DeliveryPrice:        r.DeliveryPrice,
		CostPerTransport:     r.CostPerTransport,
		DistanceKm:           r.DistanceKm,
		PricePerKm:           json.Number(r.PricePerKm.StringFixed(2)),
		AdminNotes:           r.AdminNotes,
		IsAutoGenerated:      r.IsAutoGenerated,
		SourceTransportID:    r.SourceTransportID,
		DateChanged:          r.DateChanged,
		NewDeliveryDate:      r.NewDeliveryDate,
		OriginalDeliveryDate: r.OriginalDeliveryDate,
	}
}

func (r ResponseJSON) toResponse() (forwarding.Response, error) {
	pricePerKm := decimal.Zero
	if r.PricePerKm != "" {
		var err error
		if pricePerKm, err = decimal.NewFromString(r.PricePerKm.String()); err != nil {
			return forwarding.Response{}, fmt.Errorf("pricePerKm: %w", err)
		}
	}
	return forwarding.Response{
		DriverName:           r.DriverName,
		DriverSurname:        r.DriverSurname,
		DriverPhone:          r.DriverPhone,
		VehicleNumber:        r.VehicleNumber,
		DeliveryPrice:        r.DeliveryPrice,
		CostPerTransport:     r.CostPerTransport,
		DistanceKm:           r.DistanceKm,
		PricePerKm:           pricePerKm,
		AdminNotes:           r.AdminNotes,
		IsAutoGenerated:      r.IsAutoGenerated,
		SourceTransportID:    r.SourceTransportID,
		DateChanged:          r.DateChanged,
		NewDeliveryDate:      r.NewDeliveryDate,
		OriginalDeliveryDate: r.OriginalDeliveryDate,
	}, nil
}

// DecodeResponse parses a stored response document. A blank document yields nil.
func DecodeResponse(raw []byte) (*forwarding.Response, error) {
	if isBlank(raw) {
		return nil, nil
	}
	var doc ResponseJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	r, err := doc.toResponse()
	if err != nil {
		return nil, err
	}
	if r.IsEmpty() {
		return nil, nil
	}
	return &r, nil
}

func fromDomain(o *forwarding.Order) (OrderDTO, error) {
	d := o.Details()
	creator := o.Creator()

	dto := OrderDTO{
		ID:                 o.ID(),
		OrderNumber:        o.Number().String(),
		Status:             o.Status().String(),
		CreatedByName:      creator.Name,
		CreatedByEmail:     creator.Email,
		ResponsiblePerson:  d.ResponsiblePerson,
		ResponsibleEmail:   d.ResponsibleEmail,
		CostCenter:         d.CostCenter,
		PickupLocation:     d.Pickup.String(),
		LoadingContact:     d.LoadingContact,
		UnloadingContact:   d.UnloadingContact,
		DeliveryDate:       d.DeliveryDate,
		Documents:          d.Documents,
		Notes:              d.Notes,
		DistanceKm:         d.DistanceKm,
		MergedTransportIDs: pq.Int64Array(d.MergedTransportIDs),
		PickupAddress:      blank,
		Constructions:      blank,
		Response:           blank,
		CreatedAt:          o.CreatedAt(),
	}
	if dto.MergedTransportIDs == nil {
		dto.MergedTransportIDs = pq.Int64Array{}
	}

	var err error
	if d.PickupAddress != nil {
		if dto.PickupAddress, err = encode(fromAddress(*d.PickupAddress)); err != nil {
			return OrderDTO{}, err
		}
	}
	if dto.DeliveryAddress, err = encode(fromAddress(d.DeliveryAddress)); err != nil {
		return OrderDTO{}, err
	}
	if dto.Goods, err = encode(goodsJSON{Description: d.Goods.Description, Weight: d.Goods.Weight}); err != nil {
		return OrderDTO{}, err
	}
	if len(d.Constructions) > 0 {
		list := make([]constructionJSON, 0, len(d.Constructions))
		for _, c := range d.Constructions {
			list = append(list, constructionJSON{ID: c.ID, Name: c.Name, MPK: c.CostCenter})
		}
		if dto.Constructions, err = encode(list); err != nil {
			return OrderDTO{}, err
		}
	}

	switch r := o.Response(); {
	case r != nil:
		if dto.Response, err = encode(fromResponse(*r)); err != nil {
			return OrderDTO{}, err
		}
	case o.RawResponse() != "":
		dto.Response = datatypes.JSON(o.RawResponse())
	}

	return dto, nil
}

// decodeFailure names a column whose text could not be decoded.
type decodeFailure struct {
	Column string
	Err    error
}

// toDomain restores an order. Columns that fail to decode are left at their
// zero value and reported; an undecodable response is kept as raw text so
// that it still counts as present.
func toDomain(dto OrderDTO) (*forwarding.Order, []decodeFailure, error) {
	number, err := forwarding.ParseOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, nil, err
	}
	status, err := forwarding.ParseStatus(dto.Status)
	if err != nil {
		return nil, nil, err
	}

	var failures []decodeFailure
	fail := func(column string, err error) {
		failures = append(failures, decodeFailure{Column: column, Err: err})
	}

	details := forwarding.Details{
		ResponsiblePerson:  dto.ResponsiblePerson,
		ResponsibleEmail:   dto.ResponsibleEmail,
		CostCenter:         dto.CostCenter,
		Pickup:             forwarding.PickupLocation(dto.PickupLocation),
		LoadingContact:     dto.LoadingContact,
		UnloadingContact:   dto.UnloadingContact,
		DeliveryDate:       dto.DeliveryDate,
		Documents:          dto.Documents,
		Notes:              dto.Notes,
		DistanceKm:         dto.DistanceKm,
		MergedTransportIDs: []int64(dto.MergedTransportIDs),
	}

	if !isBlank(dto.PickupAddress) {
		var a addressJSON
		if err = json.Unmarshal(dto.PickupAddress, &a); err != nil {
			fail("pickup_address", err)
		} else if addr, addrErr := a.toAddress(); addrErr != nil {
			fail("pickup_address", addrErr)
		} else {
			details.PickupAddress = &addr
		}
	}

	if !isBlank(dto.DeliveryAddress) {
		var a addressJSON
		if err = json.Unmarshal(dto.DeliveryAddress, &a); err != nil {
			fail("delivery_address", err)
		} else if addr, addrErr := a.toAddress(); addrErr != nil {
			fail("delivery_address", addrErr)
		} else {
			details.DeliveryAddress = addr
		}
	}

	if !isBlank(dto.Goods) {
		var g goodsJSON
		if err = json.Unmarshal(dto.Goods, &g); err != nil {
			fail("goods", err)
		} else {
			details.Goods = forwarding.Goods{Description: g.Description, Weight: g.Weight}
		}
	}

	if !isBlank(dto.Constructions) {
		var list []constructionJSON
		if err = json.Unmarshal(dto.Constructions, &list); err != nil {
			fail("constructions", err)
		} else {
			for _, c := range list {
				details.Constructions = append(details.Constructions,
					forwarding.Construction{ID: c.ID, Name: c.Name, CostCenter: c.MPK})
			}
		}
	}

	response, err := DecodeResponse(dto.Response)
	rawResponse := ""
	if err != nil {
		fail("response", err)
		rawResponse = string(dto.Response)
	}

	order := forwarding.RestoreOrder(
		dto.ID,
		number,
		status,
		forwarding.Creator{Name: dto.CreatedByName, Email: dto.CreatedByEmail},
		details,
		response,
		rawResponse,
		dto.CreatedAt,
	)
	return order, failures, nil
}
