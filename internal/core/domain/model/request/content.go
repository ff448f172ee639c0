package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// DateLayout is the wire format of delivery dates.
const DateLayout = "2006-01-02"

// ParseDate reads a delivery date in the server's local time zone.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("delivery_date", err)
	}
	return d, nil
}

// Content holds the fields a requester supplies and may later edit.
type Content struct {
	TransportType Type

	// standard
	DestinationCity       string
	DestinationPostalCode string
	DestinationStreet     string
	CostCenter            string
	ConstructionSiteID    *int64
	ConstructionSite      string
	ClientName            string
	RealClientName        string
	DeliveryNotes         string
	MarketID              string
	ContactPerson         string
	ContactPhone          string

	// warehouse
	Direction        kernel.Direction
	GoodsDescription string
	DocumentNumbers  string

	DeliveryDate  time.Time
	Justification string
	Notes         string
}

// HasConstructionReference reports whether a construction site is referenced.
func (c Content) HasConstructionReference() bool {
	return c.ConstructionSiteID != nil || strings.TrimSpace(c.ConstructionSite) != ""
}

// normalize validates c for its type and applies the warehouse derivation.
// checkPastDate rejects delivery dates before the day of now.
func (c Content) normalize(now time.Time, checkPastDate bool) (Content, error) {
	if c.TransportType == "" {
		c.TransportType = TypeStandard
	}
	if err := c.TransportType.Validate(); err != nil {
		return Content{}, err
	}

	var errList []error
	if c.TransportType == TypeWarehouse {
		if c.Direction == "" {
			errList = append(errList, errs.NewValueIsRequiredError("transport_direction"))
		} else if err := c.Direction.Validate(); err != nil {
			errList = append(errList, err)
		}
		if strings.TrimSpace(c.GoodsDescription) == "" {
			errList = append(errList, errs.NewValueIsRequiredError("goods_description"))
		}
	} else {
		if strings.TrimSpace(c.DestinationCity) == "" {
			errList = append(errList, errs.NewValueIsRequiredError("destination_city"))
		}
		if err := kernel.ValidatePostalCode(c.DestinationPostalCode); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("destination_postal_code", err))
		}
		if strings.TrimSpace(c.CostCenter) == "" && !c.HasConstructionReference() {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause("mpk",
				errors.New("cost center or construction site is required")))
		}
	}
	if c.DeliveryDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("delivery_date"))
	} else if checkPastDate && isBeforeDay(c.DeliveryDate, now) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("delivery_date",
			fmt.Errorf("%s is in the past", c.DeliveryDate.Format(DateLayout))))
	}
	if strings.TrimSpace(c.Justification) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("justification"))
	}
	if err := errors.Join(errList...); err != nil {
		return Content{}, err
	}

	if c.TransportType == TypeWarehouse {
		return c.deriveWarehouseTransfer(), nil
	}
	c.Direction = ""
	return c, nil
}

// deriveWarehouseTransfer overwrites destination and cost center from the
// direction and clears the standard-only fields.
func (c Content) deriveWarehouseTransfer() Content {
	dest := c.Direction.Destination().Address()
	c.DestinationCity = dest.City()
	c.DestinationPostalCode = dest.PostalCode()
	c.DestinationStreet = dest.Street()
	c.CostCenter = c.Direction.CostCenter()

	c.ConstructionSiteID = nil
	c.ConstructionSite = ""
	c.ClientName = ""
	c.RealClientName = ""
	c.DeliveryNotes = ""
	c.MarketID = ""
	c.ContactPerson = ""
	c.ContactPhone = ""
	return c
}

func isBeforeDay(date, now time.Time) bool {
	n := now.In(date.Location())
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, date.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.Before(today)
}
