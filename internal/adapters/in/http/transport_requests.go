package http

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type createTransportRequestBody struct {
	TransportType         string `json:"transport_type" validate:"omitempty,oneof=standard warehouse"`
	DestinationCity       string `json:"destination_city"`
	DestinationPostalCode string `json:"destination_postal_code"`
	DestinationStreet     string `json:"destination_street"`
	MPK                   string `json:"mpk"`
	ConstructionSiteID    *int64 `json:"construction_site_id" validate:"omitempty,gt=0"`
	ConstructionSite      string `json:"construction_site"`
	ClientName            string `json:"client_name"`
	RealClientName        string `json:"real_client_name"`
	WZNumbers             string `json:"wz_numbers"`
	MarketID              string `json:"market_id"`
	ContactPerson         string `json:"contact_person"`
	ContactPhone          string `json:"contact_phone"`
	TransportDirection    string `json:"transport_direction"`
	GoodsDescription      string `json:"goods_description"`
	DocumentNumbers       string `json:"document_numbers"`
	DeliveryDate          string `json:"delivery_date" validate:"required"`
	Justification         string `json:"justification"`
	Notes                 string `json:"notes"`
}

func (b createTransportRequestBody) toContent() (request.Content, error) {
	t, err := request.ParseType(b.TransportType)
	if err != nil {
		return request.Content{}, err
	}
	date, err := request.ParseDate(b.DeliveryDate)
	if err != nil {
		return request.Content{}, err
	}
	return request.Content{
		TransportType:         t,
		DestinationCity:       b.DestinationCity,
		DestinationPostalCode: b.DestinationPostalCode,
		DestinationStreet:     b.DestinationStreet,
		CostCenter:            b.MPK,
		ConstructionSiteID:    b.ConstructionSiteID,
		ConstructionSite:      b.ConstructionSite,
		ClientName:            b.ClientName,
		RealClientName:        b.RealClientName,
		DeliveryNotes:         b.WZNumbers,
		MarketID:              b.MarketID,
		ContactPerson:         b.ContactPerson,
		ContactPhone:          b.ContactPhone,
		Direction:             kernel.Direction(b.TransportDirection),
		GoodsDescription:      b.GoodsDescription,
		DocumentNumbers:       b.DocumentNumbers,
		DeliveryDate:          date,
		Justification:         b.Justification,
		Notes:                 b.Notes,
	}, nil
}

type createTransportRequestData struct {
	ID int64 `json:"id"`
}

type approveData struct {
	TransportID   int64  `json:"transportId"`
	WarehouseName string `json:"warehouseName"`
}

type rejectData struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

const (
	actionApprove = "approve"
	actionReject  = "reject"
	actionEdit    = "edit"
)

// ListTransportRequests handles GET /transport-requests.
func (s *Server) ListTransportRequests(c echo.Context) error {
	var status, dateFrom, dateTo string
	params := c.QueryParams()
	for name, dst := range map[string]*string{"status": &status, "dateFrom": &dateFrom, "dateTo": &dateTo} {
		if err := runtime.BindQueryParameter("form", true, false, name, params, dst); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(name, err)
		}
	}

	query, err := queries.NewListTransportRequestsQuery(actor(c), status, dateFrom, dateTo)
	if err != nil {
		return err
	}
	views, err := s.handlers.ListTransportRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, views)
}

// CreateTransportRequest handles POST /transport-requests.
func (s *Server) CreateTransportRequest(c echo.Context) error {
	var body createTransportRequestBody
	if err := bindBody(c, &body); err != nil {
		return err
	}
	content, err := body.toContent()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateTransportRequestCommand(actor(c), content, time.Now())
	if err != nil {
		return err
	}
	result, err := s.handlers.CreateTransportRequest.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respondNotified(c, http.StatusCreated, createTransportRequestData{ID: result.ID}, result.Notification)
}

// UpdateTransportRequest handles PUT /transport-requests. The action field
// selects approve, reject or edit; for edit every other key of the body is a
// field to change.
func (s *Server) UpdateTransportRequest(c echo.Context) error {
	var fields map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	id, err := requestID(fields["requestId"])
	if err != nil {
		return err
	}
	action, _ := fields["action"].(string)
	delete(fields, "requestId")
	delete(fields, "action")

	ctx := c.Request().Context()
	now := time.Now()
	switch action {
	case actionApprove:
		warehouse, _ := fields["sourceWarehouse"].(string)
		cmd, err := commands.NewApproveTransportRequestCommand(actor(c), id, warehouse, now)
		if err != nil {
			return err
		}
		result, err := s.handlers.ApproveTransportRequest.Handle(ctx, cmd)
		if err != nil {
			return err
		}
		return respondNotified(c, http.StatusOK,
			approveData{TransportID: result.TransportID, WarehouseName: result.WarehouseName}, result.Notification)

	case actionReject:
		reason, _ := fields["reason"].(string)
		cmd, err := commands.NewRejectTransportRequestCommand(actor(c), id, reason, now)
		if err != nil {
			return err
		}
		result, err := s.handlers.RejectTransportRequest.Handle(ctx, cmd)
		if err != nil {
			return err
		}
		return respondNotified(c, http.StatusOK,
			rejectData{ID: id, Status: request.StatusRejected.String()}, result.Notification)

	case actionEdit:
		cmd, err := commands.NewEditTransportRequestCommand(actor(c), id, fields, now)
		if err != nil {
			return err
		}
		edited, err := s.handlers.EditTransportRequest.Handle(ctx, cmd)
		if err != nil {
			return err
		}
		return respond(c, http.StatusOK, requestView(edited))

	case "":
		return errs.NewValueIsRequiredError("action")
	default:
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not one of approve, reject, edit", action))
	}
}

func requestID(v any) (int64, error) {
	f, ok := v.(float64)
	switch {
	case v == nil:
		return 0, errs.NewValueIsRequiredError("requestId")
	case !ok || f != math.Trunc(f) || f <= 0:
		return 0, errs.NewValueIsInvalidErrorWithCause("requestId", fmt.Errorf("%v is not a positive integer", v))
	}
	return int64(f), nil
}

func requestView(r *request.Request) queries.TransportRequestView {
	c := r.Content()
	v := queries.TransportRequestView{
		ID:                    r.ID(),
		Status:                r.Status().String(),
		TransportType:         c.TransportType.String(),
		RequesterEmail:        r.Requester().Email,
		RequesterName:         r.Requester().Name,
		DestinationCity:       c.DestinationCity,
		DestinationPostalCode: c.DestinationPostalCode,
		DestinationStreet:     c.DestinationStreet,
		MPK:                   c.CostCenter,
		ConstructionSiteID:    c.ConstructionSiteID,
		ConstructionSite:      c.ConstructionSite,
		ClientName:            c.ClientName,
		RealClientName:        c.RealClientName,
		WZNumbers:             c.DeliveryNotes,
		MarketID:              c.MarketID,
		ContactPerson:         c.ContactPerson,
		ContactPhone:          c.ContactPhone,
		TransportDirection:    c.Direction.String(),
		GoodsDescription:      c.GoodsDescription,
		DocumentNumbers:       c.DocumentNumbers,
		DeliveryDate:          c.DeliveryDate,
		Justification:         c.Justification,
		Notes:                 c.Notes,
		TransportID:           r.TransportID(),
		CreatedAt:             r.CreatedAt(),
		UpdatedAt:             r.UpdatedAt(),
		Date:                  c.DeliveryDate.Format(time.DateOnly),
	}
	if d := r.Decision(); d != nil {
		by, at := d.By, d.At
		v.ApprovedBy, v.ApprovedAt = &by, &at
	}
	if reason := r.RejectionReason(); reason != "" {
		v.RejectionReason = &reason
	}
	return v
}
