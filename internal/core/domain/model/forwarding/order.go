package forwarding

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Goods describes the freight.
type Goods struct {
	Description string
	Weight      string
}

// Construction is a construction site the order is booked against.
type Construction struct {
	ID         int64
	Name       string
	CostCenter string
}

// Creator identifies who placed the order.
type Creator struct {
	Name  string
	Email string
}

// Details are the content fields of an order supplied at creation.
type Details struct {
	ResponsiblePerson string
	ResponsibleEmail  string
	CostCenter        string

	Pickup        PickupLocation
	PickupAddress *kernel.Address
	// DeliveryAddress must be a constructed kernel.Address.
	DeliveryAddress kernel.Address

	LoadingContact   string
	UnloadingContact string
	DeliveryDate     time.Time

	Goods         Goods
	Documents     string
	Notes         string
	Constructions []Construction

	DistanceKm         int
	MergedTransportIDs []int64
}

// Order is the freight-forwarding aggregate root.
//
// Order follows these invariants:
//   - The order number is assigned once, at creation
//   - A producer pickup carries a pickup address
//   - The response, once non-empty, is only replaced by an explicit RecordResponse
type Order struct {
	id        int64
	number    OrderNumber
	status    Status
	creator   Creator
	details   Details
	response  *Response
	createdAt time.Time

	// rawResponse is a stored response that could not be decoded. It counts as
	// a non-empty response.
	rawResponse string

	isConstructed bool
}

// NewOrder validates details and creates a new order in status new.
func NewOrder(number OrderNumber, creator Creator, details Details, createdAt time.Time) (*Order, error) {
	o := &Order{
		number:        number,
		status:        StatusNew,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCreator(creator),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage without re-running creation rules.
func RestoreOrder(
	id int64,
	number OrderNumber,
	status Status,
	creator Creator,
	details Details,
	response *Response,
	rawResponse string,
	createdAt time.Time,
) *Order {
	return &Order{
		id:            id,
		number:        number,
		status:        status,
		creator:       creator,
		details:       details,
		response:      response,
		rawResponse:   rawResponse,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID sets the id generated by storage. It may be called once.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return errs.NewConflictError("order", o.id, errors.New("id already assigned"))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	o.id = id
	return nil
}

func (o *Order) ID() int64            { return o.id }
func (o *Order) Number() OrderNumber  { return o.number }
func (o *Order) Status() Status       { return o.status }
func (o *Order) Creator() Creator     { return o.creator }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Details returns a copy of the content fields.
func (o *Order) Details() Details {
	d := o.details
	d.Constructions = slices.Clone(o.details.Constructions)
	d.MergedTransportIDs = slices.Clone(o.details.MergedTransportIDs)
	return d
}

// Response returns the recorded response, or nil.
func (o *Order) Response() *Response {
	if o.response == nil {
		return nil
	}
	r := *o.response
	return &r
}

// RawResponse returns the stored response text when it could not be decoded.
func (o *Order) RawResponse() string { return o.rawResponse }

// HasResponse reports whether the order holds a non-empty response.
func (o *Order) HasResponse() bool {
	if o.response != nil && !o.response.IsEmpty() {
		return true
	}
	raw := strings.TrimSpace(o.rawResponse)
	return raw != "" && raw != "null" && raw != "{}"
}

// RecordResponse stores the carrier response. The response is linked to this
// order as its source and the order distance follows the response when given.
// Status is left unchanged.
func (o *Order) RecordResponse(r Response) error {
	if r.DistanceKm < 0 {
		return errs.NewValueIsOutOfRangeError("distanceKm", r.DistanceKm, 0, "unbounded")
	}
	if r.DeliveryPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryPrice",
			fmt.Errorf("%s is negative", r.DeliveryPrice.String()))
	}

	r.SourceTransportID = o.id
	r.IsAutoGenerated = false
	r = r.withDerivedPricePerKm()

	o.response = &r
	o.rawResponse = ""
	if r.DistanceKm > 0 {
		o.details.DistanceKm = r.DistanceKm
	}
	return nil
}

// AcceptPropagatedResponse stores a response derived from a connected order.
// It fails when the order already holds a response.
func (o *Order) AcceptPropagatedResponse(r Response) error {
	if o.HasResponse() {
		return errs.NewConflictError("order", o.id, errors.New("order already has a response"))
	}
	if !r.IsAutoGenerated || r.SourceTransportID == 0 {
		return errs.NewValueIsInvalidErrorWithCause("response",
			errors.New("propagated response must be auto-generated and reference its source"))
	}
	o.response = &r
	o.rawResponse = ""
	return nil
}

func (o *Order) setCreator(c Creator) error {
	c.Email = strings.TrimSpace(c.Email)
	c.Name = strings.TrimSpace(c.Name)
	if c.Email == "" {
		return errs.NewValueIsRequiredError("createdByEmail")
	}
	if c.Name == "" {
		c.Name = c.Email
	}
	o.creator = c
	return nil
}

func (o *Order) setDetails(d Details) error {
	var errList []error

	if err := d.Pickup.Validate(); err != nil {
		errList = append(errList, err)
	}
	if d.Pickup == PickupProducer {
		if d.PickupAddress == nil {
			errList = append(errList, errs.NewValueIsRequiredError("producerAddress"))
		} else if err := d.PickupAddress.Validate(); err != nil {
			errList = append(errList, err)
		}
	} else {
		d.PickupAddress = nil
	}
	if err := d.DeliveryAddress.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("delivery", err))
	}
	if d.DeliveryDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("deliveryDate"))
	}
	if strings.TrimSpace(d.Goods.Description) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("goodsDescription"))
	}
	if d.DistanceKm < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("distanceKm", d.DistanceKm, 0, "unbounded"))
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	d.Constructions = slices.Clone(d.Constructions)
	d.MergedTransportIDs = slices.Clone(d.MergedTransportIDs)
	o.details = d
	return nil
}
