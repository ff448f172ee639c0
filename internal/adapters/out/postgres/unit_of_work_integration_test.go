package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	postgresadapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/domain/model/transport"
	"logistics/internal/core/ports"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
	logger   logrus.FieldLogger
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	suite.logger = logger
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(database.DB, logger)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Stop(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx), "nothing left to roll back after commit")

	suite.Require().Error(suite.factory.Create().Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsWrites() {
	ctx := context.Background()
	req := suite.pendingRequest()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	_, err := uow.TransportRequestRepository().Add(ctx, req)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.database.DB.Table("transport_requests").Count(&count).Error)
	suite.Zero(count)
}

// failingTransports fails every insert, simulating an error between marking
// the request approved and linking its transport.
type failingTransports struct{ ports.UnitOfWork }

func (f failingTransports) TransportRepository() ports.TransportRepository { return brokenRepo{} }

type brokenRepo struct{}

func (brokenRepo) Add(context.Context, *transport.Transport) (int64, error) {
	return 0, errors.New("transports table is read-only")
}

type failingFactory struct{ ports.UnitOfWorkFactory }

func (f failingFactory) Create() ports.UnitOfWork {
	return failingTransports{UnitOfWork: f.UnitOfWorkFactory.Create()}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestApproval_FailedTransportLeavesRequestPending() {
	ctx := context.Background()
	req := suite.pendingRequest()
	uow := suite.factory.Create()
	id, err := uow.TransportRequestRepository().Add(ctx, req)
	suite.Require().NoError(err)

	approver, err := access.NewUser("magazyn@example.com", "", "magazyn", nil, nil)
	suite.Require().NoError(err)
	cmd, err := commands.NewApproveTransportRequestCommand(approver, id, "bialystok", time.Now())
	suite.Require().NoError(err)

	h := commands.NewApproveTransportRequestCommandHandler(
		commands.NewApprovalUoWFactory(failingFactory{suite.factory}),
		commands.NewRequestUoWFactory(suite.factory),
		nil, suite.logger)
	_, err = h.Handle(ctx, cmd)
	suite.Require().Error(err)

	stored, err := suite.factory.Create().TransportRequestRepository().Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(request.StatusPending, stored.Status())
	suite.Nil(stored.Decision())
	suite.Nil(stored.TransportID())

	var transports int64
	suite.Require().NoError(suite.database.DB.Table("transports").Count(&transports).Error)
	suite.Zero(transports)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestApproval_CreatesAndLinksTransport() {
	ctx := context.Background()
	req := suite.pendingRequest()
	id, err := suite.factory.Create().TransportRequestRepository().Add(ctx, req)
	suite.Require().NoError(err)

	approver, err := access.NewUser("magazyn@example.com", "", "magazyn", nil, nil)
	suite.Require().NoError(err)
	cmd, err := commands.NewApproveTransportRequestCommand(approver, id, "zielonka", time.Now())
	suite.Require().NoError(err)

	h := commands.NewApproveTransportRequestCommandHandler(
		commands.NewApprovalUoWFactory(suite.factory),
		commands.NewRequestUoWFactory(suite.factory),
		nil, suite.logger)
	result, err := h.Handle(ctx, cmd)
	suite.Require().NoError(err)

	stored, err := suite.factory.Create().TransportRequestRepository().Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(request.StatusApproved, stored.Status())
	suite.Require().NotNil(stored.TransportID())
	suite.Equal(result.TransportID, *stored.TransportID())

	_, err = h.Handle(ctx, cmd)
	suite.Require().Error(err, "a second approval conflicts")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestResetApproval_KeepsLinkedRequests() {
	ctx := context.Background()
	req := suite.pendingRequest()
	repo := suite.factory.Create().TransportRequestRepository()
	id, err := repo.Add(ctx, req)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.database.DB.Exec(
		"INSERT INTO transports (destination_city, delivery_date, source_warehouse) VALUES ('Warszawa', CURRENT_DATE, 'zielonka')").Error)
	suite.Require().NoError(suite.database.DB.Exec(
		"UPDATE transport_requests SET status = 'approved', approved_by = 'x', approved_at = NOW(), transport_id = 1 WHERE id = ?", id).Error)

	suite.Require().NoError(repo.ResetApproval(ctx, id))

	stored, err := repo.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(request.StatusApproved, stored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestNumbering_ConcurrentCreatesGetDistinctNumbers() {
	ctx := context.Background()
	creator, err := access.NewUser("jan@example.com", "Jan", "handlowiec", nil, nil)
	suite.Require().NoError(err)
	delivery, err := kernel.NewAddress("Kraków", "", "")
	suite.Require().NoError(err)

	h := commands.NewCreateForwardingOrderCommandHandler(commands.NewForwardingUoWFactory(suite.factory))
	createdAt := time.Date(2025, time.June, 3, 12, 0, 0, 0, time.UTC)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = make(map[string]struct{})
		errList []error
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewCreateForwardingOrderCommand(creator, forwarding.Details{
				Pickup:          forwarding.PickupBialystok,
				DeliveryAddress: delivery,
				DeliveryDate:    createdAt.AddDate(0, 0, 7),
				Goods:           forwarding.Goods{Description: "kształtki"},
			}, createdAt)
			if cmdErr != nil {
				mu.Lock()
				errList = append(errList, cmdErr)
				mu.Unlock()
				return
			}
			result, handleErr := h.Handle(ctx, cmd)
			mu.Lock()
			defer mu.Unlock()
			if handleErr != nil {
				errList = append(errList, handleErr)
				return
			}
			numbers[result.OrderNumber] = struct{}{}
		}()
	}
	wg.Wait()

	suite.Require().Empty(errList)
	suite.Len(numbers, workers)
	for i := 1; i <= workers; i++ {
		suite.Contains(numbers, fmt.Sprintf("%04d/06/2025", i))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) pendingRequest() *request.Request {
	n := time.Now()
	req, err := request.NewRequest(request.Requester{Email: "handlowiec@example.com", Name: "Ewa"}, request.Content{
		TransportType:   request.TypeStandard,
		DestinationCity: "Warszawa",
		CostCenter:      "521-01-07",
		ClientName:      "Budimex",
		DeliveryDate:    time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, 2),
		Justification:   "pilna dostawa",
	}, n)
	suite.Require().NoError(err)
	return req
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
