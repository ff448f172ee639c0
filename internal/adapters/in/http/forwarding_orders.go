package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

type addressBody struct {
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode"`
	Street     string `json:"street"`
}

func (a addressBody) toAddress() (kernel.Address, error) {
	return kernel.NewAddress(a.City, a.PostalCode, a.Street)
}

type goodsBody struct {
	Description string `json:"description" validate:"required"`
	Weight      string `json:"weight"`
}

type constructionBody struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
	MPK  string `json:"mpk"`
}

type createForwardingOrderBody struct {
	ResponsiblePerson        string             `json:"responsiblePerson"`
	ResponsibleEmail         string             `json:"responsibleEmail" validate:"omitempty,email"`
	MPK                      string             `json:"mpk"`
	Location                 string             `json:"location" validate:"required,oneof=magazyn_bialystok magazyn_zielonka producer"`
	ProducerAddress          *addressBody       `json:"producerAddress" validate:"required_if=Location producer,omitempty"`
	Delivery                 addressBody        `json:"delivery"`
	LoadingContact           string             `json:"loadingContact"`
	UnloadingContact         string             `json:"unloadingContact"`
	DeliveryDate             string             `json:"deliveryDate" validate:"required,datetime=2006-01-02"`
	Goods                    goodsBody          `json:"goodsDescription"`
	Documents                string             `json:"documents"`
	Notes                    string             `json:"notes"`
	ResponsibleConstructions []constructionBody `json:"responsibleConstructions" validate:"dive"`
	DistanceKm               int                `json:"distanceKm" validate:"gte=0"`
	MergedTransports         []int64            `json:"mergedTransports"`
}

func (b createForwardingOrderBody) toDetails() (forwarding.Details, error) {
	pickup, err := forwarding.ParsePickupLocation(b.Location)
	if err != nil {
		return forwarding.Details{}, err
	}
	delivery, err := b.Delivery.toAddress()
	if err != nil {
		return forwarding.Details{}, err
	}
	date, err := time.ParseInLocation(time.DateOnly, b.DeliveryDate, time.Local)
	if err != nil {
		return forwarding.Details{}, errs.NewValueIsInvalidErrorWithCause("deliveryDate", err)
	}

	d := forwarding.Details{
		ResponsiblePerson:  b.ResponsiblePerson,
		ResponsibleEmail:   b.ResponsibleEmail,
		CostCenter:         b.MPK,
		Pickup:             pickup,
		DeliveryAddress:    delivery,
		LoadingContact:     b.LoadingContact,
		UnloadingContact:   b.UnloadingContact,
		DeliveryDate:       date,
		Goods:              forwarding.Goods{Description: b.Goods.Description, Weight: b.Goods.Weight},
		Documents:          b.Documents,
		Notes:              b.Notes,
		DistanceKm:         b.DistanceKm,
		MergedTransportIDs: b.MergedTransports,
	}
	if b.ProducerAddress != nil {
		addr, err := b.ProducerAddress.toAddress()
		if err != nil {
			return forwarding.Details{}, err
		}
		d.PickupAddress = &addr
	}
	for _, c := range b.ResponsibleConstructions {
		d.Constructions = append(d.Constructions, forwarding.Construction{ID: c.ID, Name: c.Name, CostCenter: c.MPK})
	}
	return d, nil
}

type recordResponseBody struct {
	ID                  int64               `json:"id" validate:"required,gt=0"`
	DriverName          string              `json:"driverName"`
	DriverSurname       string              `json:"driverSurname"`
	DriverPhone         string              `json:"driverPhone"`
	VehicleNumber       string              `json:"vehicleNumber"`
	DeliveryPrice       decimal.Decimal     `json:"deliveryPrice"`
	CostPerTransport    decimal.NullDecimal `json:"costPerTransport"`
	DistanceKm          int                 `json:"distanceKm" validate:"gte=0"`
	AdminNotes          string              `json:"adminNotes"`
	DateChanged         bool                `json:"dateChanged"`
	NewDeliveryDate     string              `json:"newDeliveryDate" validate:"required_if=DateChanged true,omitempty,datetime=2006-01-02"`
	ConnectedTransports []int64             `json:"connectedTransports"`
}

func (b recordResponseBody) toResponse() (forwarding.Response, error) {
	r := forwarding.Response{
		DriverName:       b.DriverName,
		DriverSurname:    b.DriverSurname,
		DriverPhone:      b.DriverPhone,
		VehicleNumber:    b.VehicleNumber,
		DeliveryPrice:    b.DeliveryPrice,
		CostPerTransport: b.CostPerTransport,
		DistanceKm:       b.DistanceKm,
		AdminNotes:       b.AdminNotes,
		DateChanged:      b.DateChanged,
	}
	if b.NewDeliveryDate != "" {
		d, err := time.ParseInLocation(time.DateOnly, b.NewDeliveryDate, time.Local)
		if err != nil {
			return forwarding.Response{}, errs.NewValueIsInvalidErrorWithCause("newDeliveryDate", err)
		}
		r.NewDeliveryDate = &d
	}
	return r, nil
}

type recordResponseData struct {
	Order       queries.ForwardingOrderView  `json:"order"`
	Propagation *commands.PropagationReport `json:"propagation,omitempty"`
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return c.Validate(dst)
}

// ListForwardingOrders handles GET /forwarding-orders.
func (s *Server) ListForwardingOrders(c echo.Context) error {
	var status string
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &status); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	query, err := queries.NewListForwardingOrdersQuery(status)
	if err != nil {
		return err
	}
	orders, err := s.handlers.ListForwardingOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, orders)
}

// CreateForwardingOrder handles POST /forwarding-orders.
func (s *Server) CreateForwardingOrder(c echo.Context) error {
	var body createForwardingOrderBody
	if err := bindBody(c, &body); err != nil {
		return err
	}
	details, err := body.toDetails()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateForwardingOrderCommand(actor(c), details, time.Now())
	if err != nil {
		return err
	}
	result, err := s.handlers.CreateForwardingOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, result)
}

// RecordForwardingResponse handles PUT /forwarding-orders. The reply carries
// the reloaded order and, when connected orders were named, the propagation
// report.
func (s *Server) RecordForwardingResponse(c echo.Context) error {
	var body recordResponseBody
	if err := bindBody(c, &body); err != nil {
		return err
	}
	response, err := body.toResponse()
	if err != nil {
		return err
	}

	cmd, err := commands.NewRecordForwardingResponseCommand(actor(c), body.ID, response, body.ConnectedTransports)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	result, err := s.handlers.RecordForwardingResponse.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	query, err := queries.NewGetForwardingOrderQuery(body.ID)
	if err != nil {
		return err
	}
	view, err := s.handlers.GetForwardingOrder.Handle(ctx, query)
	if err != nil {
		return err
	}
	return respondNotified(c, http.StatusOK, recordResponseData{Order: view, Propagation: result.Propagation}, result.Notification)
}

// DeleteForwardingOrder handles DELETE /forwarding-orders?id=.
func (s *Server) DeleteForwardingOrder(c echo.Context) error {
	var id int64
	if err := runtime.BindQueryParameter("form", true, true, "id", c.QueryParams(), &id); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	cmd, err := commands.NewDeleteForwardingOrderCommand(actor(c), id)
	if err != nil {
		return err
	}
	if err = s.handlers.DeleteForwardingOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]int64{"id": id})
}
