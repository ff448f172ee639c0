// Package http exposes forwarding orders and transport requests over HTTP.
// Every route requires a session; responses use the Envelope shape.
package http

import (
	"context"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/ports"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const BasePath = "/api"

type CreateForwardingOrderHandler interface {
	Handle(context.Context, commands.CreateForwardingOrderCommand) (commands.CreateForwardingOrderResult, error)
}

type RecordForwardingResponseHandler interface {
	Handle(context.Context, commands.RecordForwardingResponseCommand) (commands.RecordForwardingResponseResult, error)
}

type DeleteForwardingOrderHandler interface {
	Handle(context.Context, commands.DeleteForwardingOrderCommand) error
}

type CreateTransportRequestHandler interface {
	Handle(context.Context, commands.CreateTransportRequestCommand) (commands.CreateTransportRequestResult, error)
}

type ApproveTransportRequestHandler interface {
	Handle(context.Context, commands.ApproveTransportRequestCommand) (commands.ApproveTransportRequestResult, error)
}

type RejectTransportRequestHandler interface {
	Handle(context.Context, commands.RejectTransportRequestCommand) (commands.RejectTransportRequestResult, error)
}

type EditTransportRequestHandler interface {
	Handle(context.Context, commands.EditTransportRequestCommand) (*request.Request, error)
}

type ListForwardingOrdersHandler interface {
	Handle(context.Context, queries.ListForwardingOrdersQuery) ([]queries.ForwardingOrderView, error)
}

type GetForwardingOrderHandler interface {
	Handle(context.Context, queries.GetForwardingOrderQuery) (queries.ForwardingOrderView, error)
}

type ListTransportRequestsHandler interface {
	Handle(context.Context, queries.ListTransportRequestsQuery) ([]queries.TransportRequestView, error)
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateForwardingOrder    CreateForwardingOrderHandler
	RecordForwardingResponse RecordForwardingResponseHandler
	DeleteForwardingOrder    DeleteForwardingOrderHandler
	ListForwardingOrders     ListForwardingOrdersHandler
	GetForwardingOrder       GetForwardingOrderHandler

	CreateTransportRequest  CreateTransportRequestHandler
	ApproveTransportRequest ApproveTransportRequestHandler
	RejectTransportRequest  RejectTransportRequestHandler
	EditTransportRequest    EditTransportRequestHandler
	ListTransportRequests   ListTransportRequestsHandler
}

type Server struct {
	handlers   Handlers
	sessions   ports.SessionResolver
	users      ports.UserRepository
	cookieName string
	logger     logrus.FieldLogger
}

func NewServer(
	handlers Handlers,
	sessions ports.SessionResolver,
	users ports.UserRepository,
	cookieName string,
	logger logrus.FieldLogger,
) *Server {
	if cookieName == "" {
		cookieName = "session"
	}
	return &Server{
		handlers:   handlers,
		sessions:   sessions,
		users:      users,
		cookieName: cookieName,
		logger:     logger.WithField("component", "http"),
	}
}

// Register mounts the routes on e. doc may be nil, which disables body
// validation against the contract.
func (s *Server) Register(e *echo.Echo, doc *openapi3.T) {
	e.HTTPErrorHandler = s.ErrorHandler
	e.Validator = NewValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	g := e.Group(BasePath, s.Authenticate)
	if doc != nil {
		g.Use(ValidateBody(doc, BasePath))
	}

	g.GET("/forwarding-orders", s.ListForwardingOrders)
	g.POST("/forwarding-orders", s.CreateForwardingOrder)
	g.PUT("/forwarding-orders", s.RecordForwardingResponse)
	g.DELETE("/forwarding-orders", s.DeleteForwardingOrder)

	g.GET("/transport-requests", s.ListTransportRequests)
	g.POST("/transport-requests", s.CreateTransportRequest)
	g.PUT("/transport-requests", s.UpdateTransportRequest)
}
