// Package queries contains the read side. Handlers query the database directly
// and return views shaped for the HTTP layer.
package queries

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AddressView struct {
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Street     string `json:"street,omitempty"`
}

type GoodsView struct {
	Description string `json:"description"`
	Weight      string `json:"weight,omitempty"`
}

type ConstructionView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	MPK  string `json:"mpk,omitempty"`
}

// Rate is a per-kilometer price. It always renders with two decimal places.
type Rate struct {
	decimal.Decimal
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.StringFixed(2) + `"`), nil
}

type ResponseView struct {
	DriverName           string              `json:"driverName,omitempty"`
	DriverSurname        string              `json:"driverSurname,omitempty"`
	DriverPhone          string              `json:"driverPhone,omitempty"`
	VehicleNumber        string              `json:"vehicleNumber,omitempty"`
	DeliveryPrice        decimal.Decimal     `json:"deliveryPrice"`
	CostPerTransport     decimal.NullDecimal `json:"costPerTransport"`
	DistanceKm           int                 `json:"distanceKm"`
	PricePerKm           Rate                `json:"pricePerKm"`
	AdminNotes           string              `json:"adminNotes,omitempty"`
	IsAutoGenerated      bool                `json:"isAutoGenerated"`
	SourceTransportID    int64               `json:"sourceTransportId,omitempty"`
	DateChanged          bool                `json:"dateChanged"`
	NewDeliveryDate      *time.Time          `json:"newDeliveryDate,omitempty"`
	OriginalDeliveryDate *time.Time          `json:"originalDeliveryDate,omitempty"`
}

// ForwardingOrderView is an order as listed. Structured columns that could not
// be decoded are omitted from their field and returned verbatim in Undecoded,
// keyed by column name.
type ForwardingOrderView struct {
	ID                       int64              `json:"id"`
	OrderNumber              string             `json:"orderNumber"`
	Status                   string             `json:"status"`
	CreatedByName            string             `json:"createdByName"`
	CreatedByEmail           string             `json:"createdByEmail"`
	ResponsiblePerson        string             `json:"responsiblePerson"`
	ResponsibleEmail         string             `json:"responsibleEmail"`
	MPK                      string             `json:"mpk"`
	Location                 string             `json:"location"`
	ProducerAddress          *AddressView       `json:"producerAddress,omitempty"`
	Delivery                 *AddressView       `json:"delivery,omitempty"`
	LoadingContact           string             `json:"loadingContact"`
	UnloadingContact         string             `json:"unloadingContact"`
	DeliveryDate             string             `json:"deliveryDate"`
	Goods                    *GoodsView         `json:"goodsDescription,omitempty"`
	Documents                string             `json:"documents"`
	Notes                    string             `json:"notes"`
	ResponsibleConstructions []ConstructionView `json:"responsibleConstructions"`
	DistanceKm               int                `json:"distanceKm"`
	MergedTransports         []int64            `json:"mergedTransports"`
	Response                 *ResponseView      `json:"response,omitempty"`
	CreatedAt                time.Time          `json:"createdAt"`
	Undecoded                map[string]string  `json:"undecoded,omitempty"`
}

type forwardingOrderRow struct {
	ID                 int64         `db:"id"`
	OrderNumber        string        `db:"order_number"`
	Status             string        `db:"status"`
	CreatedByName      string        `db:"created_by_name"`
	CreatedByEmail     string        `db:"created_by_email"`
	ResponsiblePerson  string        `db:"responsible_person"`
	ResponsibleEmail   string        `db:"responsible_email"`
	CostCenter         string        `db:"cost_center"`
	PickupLocation     string        `db:"pickup_location"`
	PickupAddress      string        `db:"pickup_address"`
	DeliveryAddress    string        `db:"delivery_address"`
	LoadingContact     string        `db:"loading_contact"`
	UnloadingContact   string        `db:"unloading_contact"`
	DeliveryDate       time.Time     `db:"delivery_date"`
	Goods              string        `db:"goods"`
	Documents          string        `db:"documents"`
	Notes              string        `db:"notes"`
	Constructions      string        `db:"constructions"`
	DistanceKm         int           `db:"distance_km"`
	MergedTransportIDs pq.Int64Array `db:"merged_transport_ids"`
	Response           string        `db:"response"`
	CreatedAt          time.Time     `db:"created_at"`
}

const forwardingOrderColumns = `
	id, order_number, status, created_by_name, created_by_email,
	responsible_person, responsible_email, cost_center, pickup_location,
	pickup_address, delivery_address, loading_contact, unloading_contact,
	delivery_date, goods, documents, notes, constructions, distance_km,
	merged_transport_ids, response, created_at`

func blankJSON(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "null" || s == "{}"
}

// toView decodes the structured columns. Each failure is logged and recorded in
// Undecoded; the rest of the row is still returned.
func (r forwardingOrderRow) toView(logger logrus.FieldLogger) ForwardingOrderView {
	v := ForwardingOrderView{
		ID:                       r.ID,
		OrderNumber:              r.OrderNumber,
		Status:                   r.Status,
		CreatedByName:            r.CreatedByName,
		CreatedByEmail:           r.CreatedByEmail,
		ResponsiblePerson:        r.ResponsiblePerson,
		ResponsibleEmail:         r.ResponsibleEmail,
		MPK:                      r.CostCenter,
		Location:                 r.PickupLocation,
		LoadingContact:           r.LoadingContact,
		UnloadingContact:         r.UnloadingContact,
		DeliveryDate:             r.DeliveryDate.Format(time.DateOnly),
		Documents:                r.Documents,
		Notes:                    r.Notes,
		ResponsibleConstructions: []ConstructionView{},
		DistanceKm:               r.DistanceKm,
		MergedTransports:         []int64(r.MergedTransportIDs),
		CreatedAt:                r.CreatedAt,
	}
	if v.MergedTransports == nil {
		v.MergedTransports = []int64{}
	}

	decode := func(column, raw string, dst any) bool {
		if blankJSON(raw) {
			return false
		}
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			logger.WithFields(logrus.Fields{"order": r.ID, "column": column}).
				WithError(err).Warn("stored value could not be decoded")
			if v.Undecoded == nil {
				v.Undecoded = make(map[string]string)
			}
			v.Undecoded[column] = raw
			return false
		}
		return true
	}

	var pickup, delivery AddressView
	if decode("pickup_address", r.PickupAddress, &pickup) {
		v.ProducerAddress = &pickup
	}
	if decode("delivery_address", r.DeliveryAddress, &delivery) {
		v.Delivery = &delivery
	}
	var goods GoodsView
	if decode("goods", r.Goods, &goods) {
		v.Goods = &goods
	}
	var constructions []ConstructionView
	if decode("constructions", r.Constructions, &constructions) && constructions != nil {
		v.ResponsibleConstructions = constructions
	}
	var response ResponseView
	if decode("response", r.Response, &response) {
		v.Response = &response
	}
	return v
}
