// Package transport provides the scheduled shipment created when a transport
// request is approved. The calendar that displays transports is owned by
// another system; this package only knows how to create one correctly.
package transport

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrTransportIsNotConstructed = errors.New("Transport must be created via NewTransport constructor")

// StatusActive is the status of every newly scheduled transport.
const StatusActive = "active"

// DefaultLoadingLevel is used for transports created from requests.
const DefaultLoadingLevel = "100%"

// Plan lists the fields of a transport to be scheduled.
type Plan struct {
	Destination     kernel.Address
	DeliveryDate    time.Time
	SourceWarehouse kernel.Warehouse
	CostCenter      string
	ClientName      string
	RequesterName   string
	RequesterEmail  string
	DeliveryNote    string
	Market          string
	DistanceKm      int
	Notes           string
	LoadingLevel    string
	IsCyclical      bool
	RequestID       int64
}

// Transport is a scheduled company shipment.
type Transport struct {
	id     int64
	status string
	plan   Plan

	isConstructed bool
}

// NewTransport validates a plan and creates an active transport.
func NewTransport(p Plan) (*Transport, error) {
	var errList []error
	if err := p.Destination.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("destination", err))
	}
	if p.DeliveryDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("delivery_date"))
	}
	if err := p.SourceWarehouse.Validate(); err != nil {
		errList = append(errList, err)
	}
	if p.DistanceKm < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("distance", p.DistanceKm, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	if strings.TrimSpace(p.LoadingLevel) == "" {
		p.LoadingLevel = DefaultLoadingLevel
	}
	return &Transport{status: StatusActive, plan: p, isConstructed: true}, nil
}

func (t *Transport) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransportIsNotConstructed
	}
	return nil
}

// AssignID sets the id generated by storage. It may be called once.
func (t *Transport) AssignID(id int64) error {
	if t.id != 0 {
		return errs.NewConflictError("transport", t.id, errors.New("id already assigned"))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	t.id = id
	return nil
}

func (t *Transport) ID() int64      { return t.id }
func (t *Transport) Status() string { return t.status }
func (t *Transport) Plan() Plan     { return t.plan }
