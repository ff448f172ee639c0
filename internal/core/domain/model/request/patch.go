package request

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// protectedFields can never be changed through an edit.
var protectedFields = map[string]struct{}{
	"id":               {},
	"status":           {},
	"requester_email":  {},
	"requester_name":   {},
	"approved_by":      {},
	"approved_at":      {},
	"rejection_reason": {},
	"transport_id":     {},
	"created_at":       {},
	"updated_at":       {},
}

// IsProtectedField reports whether key names an ownership or status column.
func IsProtectedField(key string) bool {
	_, ok := protectedFields[key]
	return ok
}

// Patch is a partial update of request content. Nil fields are left unchanged.
type Patch struct {
	TransportType         *Type
	DestinationCity       *string
	DestinationPostalCode *string
	DestinationStreet     *string
	CostCenter            *string
	ConstructionSiteID    **int64
	ConstructionSite      *string
	ClientName            *string
	RealClientName        *string
	DeliveryNotes         *string
	MarketID              *string
	ContactPerson         *string
	ContactPhone          *string
	Direction             *kernel.Direction
	GoodsDescription      *string
	DocumentNumbers       *string
	DeliveryDate          *time.Time
	Justification         *string
	Notes                 *string
}

// PatchFromFields builds a Patch from a decoded JSON object. Protected and
// unknown keys are dropped.
func PatchFromFields(fields map[string]any) (Patch, error) {
	var p Patch
	var errList []error

	str := func(key string) *string {
		v, ok := fields[key]
		if !ok || IsProtectedField(key) {
			return nil
		}
		s, err := asString(key, v)
		if err != nil {
			errList = append(errList, err)
			return nil
		}
		return &s
	}

	if s := str("transport_type"); s != nil {
		t, err := ParseType(*s)
		if err != nil {
			errList = append(errList, err)
		} else {
			p.TransportType = &t
		}
	}
	p.DestinationCity = str("destination_city")
	p.DestinationPostalCode = str("destination_postal_code")
	p.DestinationStreet = str("destination_street")
	p.CostCenter = str("mpk")
	p.ConstructionSite = str("construction_site")
	p.ClientName = str("client_name")
	p.RealClientName = str("real_client_name")
	p.DeliveryNotes = str("wz_numbers")
	p.MarketID = str("market_id")
	p.ContactPerson = str("contact_person")
	p.ContactPhone = str("contact_phone")
	p.GoodsDescription = str("goods_description")
	p.DocumentNumbers = str("document_numbers")
	p.Justification = str("justification")
	p.Notes = str("notes")

	if v, ok := fields["construction_site_id"]; ok {
		id, err := asOptionalID("construction_site_id", v)
		if err != nil {
			errList = append(errList, err)
		} else {
			p.ConstructionSiteID = &id
		}
	}
	if s := str("transport_direction"); s != nil {
		d := kernel.Direction(*s)
		p.Direction = &d
	}
	if s := str("delivery_date"); s != nil {
		d, err := ParseDate(*s)
		if err != nil {
			errList = append(errList, err)
		} else {
			p.DeliveryDate = &d
		}
	}

	return p, errors.Join(errList...)
}

func (p Patch) applyTo(c Content) Content {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	if p.TransportType != nil {
		c.TransportType = *p.TransportType
	}
	set(&c.DestinationCity, p.DestinationCity)
	set(&c.DestinationPostalCode, p.DestinationPostalCode)
	set(&c.DestinationStreet, p.DestinationStreet)
	set(&c.CostCenter, p.CostCenter)
	set(&c.ConstructionSite, p.ConstructionSite)
	set(&c.ClientName, p.ClientName)
	set(&c.RealClientName, p.RealClientName)
	set(&c.DeliveryNotes, p.DeliveryNotes)
	set(&c.MarketID, p.MarketID)
	set(&c.ContactPerson, p.ContactPerson)
	set(&c.ContactPhone, p.ContactPhone)
	set(&c.GoodsDescription, p.GoodsDescription)
	set(&c.DocumentNumbers, p.DocumentNumbers)
	set(&c.Justification, p.Justification)
	set(&c.Notes, p.Notes)
	if p.ConstructionSiteID != nil {
		c.ConstructionSiteID = *p.ConstructionSiteID
	}
	if p.Direction != nil {
		c.Direction = *p.Direction
	}
	if p.DeliveryDate != nil {
		c.DeliveryDate = *p.DeliveryDate
	}
	return c
}

func asString(key string, v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%T is not a string", v))
	}
}

func asOptionalID(key string, v any) (*int64, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case float64:
		if t != math.Trunc(t) || t <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%v is not a positive integer", t))
		}
		id := int64(t)
		return &id, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return nil, nil
		}
		id, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil || id <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%q is not a positive integer", t))
		}
		return &id, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%T is not an id", v))
	}
}
