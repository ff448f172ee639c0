package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/domain/model/transport"
	"logistics/internal/core/ports"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockForwardingOrderRepository struct{ mock.Mock }

func (m *MockForwardingOrderRepository) Add(ctx context.Context, o *forwarding.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockForwardingOrderRepository) Update(ctx context.Context, o *forwarding.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockForwardingOrderRepository) Get(ctx context.Context, id int64) (*forwarding.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*forwarding.Order)
	return o, args.Error(1)
}

func (m *MockForwardingOrderRepository) GetForUpdate(ctx context.Context, id int64) (*forwarding.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*forwarding.Order)
	return o, args.Error(1)
}

func (m *MockForwardingOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockForwardingOrderRepository) LockNumbering(ctx context.Context, at time.Time) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}

func (m *MockForwardingOrderRepository) NumbersCreatedBetween(ctx context.Context, from, to time.Time) ([]string, error) {
	args := m.Called(ctx, from, to)
	numbers, _ := args.Get(0).([]string)
	return numbers, args.Error(1)
}

type MockTransportRequestRepository struct{ mock.Mock }

func (m *MockTransportRequestRepository) Add(ctx context.Context, r *request.Request) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransportRequestRepository) Update(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockTransportRequestRepository) Get(ctx context.Context, id int64) (*request.Request, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*request.Request)
	return r, args.Error(1)
}

func (m *MockTransportRequestRepository) GetForUpdate(ctx context.Context, id int64) (*request.Request, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*request.Request)
	return r, args.Error(1)
}

func (m *MockTransportRequestRepository) ResetApproval(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTransportRepository struct{ mock.Mock }

func (m *MockTransportRepository) Add(ctx context.Context, t *transport.Transport) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ForwardingOrderRepository() ports.ForwardingOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ForwardingOrderRepository)
}

func (m *MockUoW) TransportRequestRepository() ports.TransportRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportRequestRepository)
}

func (m *MockUoW) TransportRepository() ports.TransportRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportRepository)
}

type MockForwardingUoWFactory struct{ mock.Mock }

func (m *MockForwardingUoWFactory) Create() commands.ForwardingUoW {
	args := m.Called()
	return args.Get(0).(commands.ForwardingUoW)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockApprovalUoWFactory struct{ mock.Mock }

func (m *MockApprovalUoWFactory) Create() commands.ApprovalUoW {
	args := m.Called()
	return args.Get(0).(commands.ApprovalUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) ports.NotificationResult {
	args := m.Called(ctx, n)
	return args.Get(0).(ports.NotificationResult)
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func user(t *testing.T, email, role, permissions string) access.User {
	t.Helper()
	var raw []byte
	if permissions != "" {
		raw = []byte(permissions)
	}
	u, err := access.NewUser(email, "", role, raw, nil)
	require.NoError(t, err)
	return u
}

func admin(t *testing.T) access.User {
	return user(t, "admin@example.com", access.RoleAdmin, "")
}

func forwardingDetails(t *testing.T) forwarding.Details {
	t.Helper()
	delivery, err := kernel.NewAddress("Kraków", "30-001", "ul. Długa 5")
	require.NoError(t, err)
	return forwarding.Details{
		ResponsiblePerson: "Anna Nowak",
		ResponsibleEmail:  "anna@example.com",
		CostCenter:        "521-01-07",
		Pickup:            forwarding.PickupZielonka,
		DeliveryAddress:   delivery,
		DeliveryDate:      time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC),
		Goods:             forwarding.Goods{Description: "rury PE"},
		DistanceKm:        200,
	}
}

func storedOrder(t *testing.T, id int64, response *forwarding.Response) *forwarding.Order {
	t.Helper()
	number := forwarding.NextOrderNumber(nil, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))
	return forwarding.RestoreOrder(id, number, forwarding.StatusNew,
		forwarding.Creator{Name: "Jan", Email: "jan@example.com"},
		forwardingDetails(t), response, "", time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC))
}

func day(offset int) time.Time {
	n := time.Now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, offset)
}

func standardContent() request.Content {
	return request.Content{
		TransportType:   request.TypeStandard,
		DestinationCity: "Warszawa",
		CostCenter:      "521-01-07",
		ClientName:      "Budimex",
		DeliveryDate:    day(2),
		Justification:   "pilna dostawa",
	}
}

func pendingRequest(t *testing.T, id int64, requesterEmail string) *request.Request {
	t.Helper()
	r, err := request.NewRequest(request.Requester{Email: requesterEmail}, standardContent(), time.Now())
	require.NoError(t, err)
	return request.RestoreRequest(id, request.StatusPending, r.Requester(), r.Content(), nil, "", nil,
		r.CreatedAt(), r.UpdatedAt())
}
