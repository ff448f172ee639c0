package http_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "logistics/internal/adapters/in/http"
	"logistics/api"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessions struct{ mock.Mock }

func (m *MockSessions) Resolve(ctx context.Context, token string) (*ports.Identity, error) {
	args := m.Called(ctx, token)
	identity, _ := args.Get(0).(*ports.Identity)
	return identity, args.Error(1)
}

type MockUsers struct{ mock.Mock }

func (m *MockUsers) GetByEmail(ctx context.Context, email string) (access.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(access.User), args.Error(1)
}

type MockCreateForwardingOrder struct{ mock.Mock }

func (m *MockCreateForwardingOrder) Handle(
	ctx context.Context, cmd commands.CreateForwardingOrderCommand,
) (commands.CreateForwardingOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateForwardingOrderResult), args.Error(1)
}

type MockRecordForwardingResponse struct{ mock.Mock }

func (m *MockRecordForwardingResponse) Handle(
	ctx context.Context, cmd commands.RecordForwardingResponseCommand,
) (commands.RecordForwardingResponseResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RecordForwardingResponseResult), args.Error(1)
}

type MockDeleteForwardingOrder struct{ mock.Mock }

func (m *MockDeleteForwardingOrder) Handle(ctx context.Context, cmd commands.DeleteForwardingOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListForwardingOrders struct{ mock.Mock }

func (m *MockListForwardingOrders) Handle(
	ctx context.Context, q queries.ListForwardingOrdersQuery,
) ([]queries.ForwardingOrderView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.ForwardingOrderView), args.Error(1)
}

type MockGetForwardingOrder struct{ mock.Mock }

func (m *MockGetForwardingOrder) Handle(
	ctx context.Context, q queries.GetForwardingOrderQuery,
) (queries.ForwardingOrderView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.ForwardingOrderView), args.Error(1)
}

type MockCreateTransportRequest struct{ mock.Mock }

func (m *MockCreateTransportRequest) Handle(
	ctx context.Context, cmd commands.CreateTransportRequestCommand,
) (commands.CreateTransportRequestResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateTransportRequestResult), args.Error(1)
}

type MockApproveTransportRequest struct{ mock.Mock }

func (m *MockApproveTransportRequest) Handle(
	ctx context.Context, cmd commands.ApproveTransportRequestCommand,
) (commands.ApproveTransportRequestResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ApproveTransportRequestResult), args.Error(1)
}

type MockRejectTransportRequest struct{ mock.Mock }

func (m *MockRejectTransportRequest) Handle(
	ctx context.Context, cmd commands.RejectTransportRequestCommand,
) (commands.RejectTransportRequestResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RejectTransportRequestResult), args.Error(1)
}

type MockEditTransportRequest struct{ mock.Mock }

func (m *MockEditTransportRequest) Handle(
	ctx context.Context, cmd commands.EditTransportRequestCommand,
) (*request.Request, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*request.Request)
	return r, args.Error(1)
}

type MockListTransportRequests struct{ mock.Mock }

func (m *MockListTransportRequests) Handle(
	ctx context.Context, q queries.ListTransportRequestsQuery,
) ([]queries.TransportRequestView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.TransportRequestView), args.Error(1)
}

type fixture struct {
	echo     *echo.Echo
	sessions *MockSessions
	users    *MockUsers

	createOrder    *MockCreateForwardingOrder
	recordResponse *MockRecordForwardingResponse
	deleteOrder    *MockDeleteForwardingOrder
	listOrders     *MockListForwardingOrders
	getOrder       *MockGetForwardingOrder
	createRequest  *MockCreateTransportRequest
	approve        *MockApproveTransportRequest
	reject         *MockRejectTransportRequest
	edit           *MockEditTransportRequest
	listRequests   *MockListTransportRequests
}

const token = "tok-1"

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		echo:           echo.New(),
		sessions:       &MockSessions{},
		users:          &MockUsers{},
		createOrder:    &MockCreateForwardingOrder{},
		recordResponse: &MockRecordForwardingResponse{},
		deleteOrder:    &MockDeleteForwardingOrder{},
		listOrders:     &MockListForwardingOrders{},
		getOrder:       &MockGetForwardingOrder{},
		createRequest:  &MockCreateTransportRequest{},
		approve:        &MockApproveTransportRequest{},
		reject:         &MockRejectTransportRequest{},
		edit:           &MockEditTransportRequest{},
		listRequests:   &MockListTransportRequests{},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	server := httpin.NewServer(httpin.Handlers{
		CreateForwardingOrder:    f.createOrder,
		RecordForwardingResponse: f.recordResponse,
		DeleteForwardingOrder:    f.deleteOrder,
		ListForwardingOrders:     f.listOrders,
		GetForwardingOrder:       f.getOrder,
		CreateTransportRequest:   f.createRequest,
		ApproveTransportRequest:  f.approve,
		RejectTransportRequest:   f.reject,
		EditTransportRequest:     f.edit,
		ListTransportRequests:    f.listRequests,
	}, f.sessions, f.users, "", logger)

	doc, err := api.Load()
	require.NoError(t, err)
	server.Register(f.echo, doc)
	return f
}

// signIn makes token resolve to a user with the given role and permissions.
func (f *fixture) signIn(t *testing.T, email, role, permissions string) access.User {
	t.Helper()
	u, err := access.NewUser(email, "", role, []byte(permissions), nil)
	require.NoError(t, err)
	f.sessions.On("Resolve", mock.Anything, token).Return(&ports.Identity{Email: email}, nil)
	f.users.On("GetByEmail", mock.Anything, email).Return(u, nil)
	return u
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

var errNotFound = errs.NewObjectNotFoundError("forwardingOrder", int64(9))

func (f *fixture) anonymous() access.User {
	return access.User{}
}
