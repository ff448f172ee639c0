package cmd

import (
	"logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/notify"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/adapters/out/session"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	sqlxDB     *sqlx.DB
	redis      *redis.Client
	uowFactory *postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     logrus.FieldLogger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	sqlxDB *sqlx.DB,
	redisClient *redis.Client,
	logger logrus.FieldLogger,
) (CompositionRoot, error) {
	notifier, err := newNotifier(config, logger)
	if err != nil {
		return CompositionRoot{}, err
	}
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		sqlxDB:     sqlxDB,
		redis:      redisClient,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		notifier:   notifier,
		logger:     logger,
	}, nil
}

// newNotifier sends mail over SMTP when a host is configured and only logs
// the rendered messages otherwise.
func newNotifier(config Config, logger logrus.FieldLogger) (ports.Notifier, error) {
	policy := notify.RecipientPolicy{
		Managers:         notify.SplitList(config.NotifyManagers),
		ResponseCreators: notify.SplitList(config.NotifyResponseCreators),
	}
	if config.SMTPHost == "" {
		return notify.NewDispatcher(policy, notify.NewLogSender(logger), logger), nil
	}
	sender, err := notify.NewSMTPSender(notify.SMTPConfig{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		User:     config.SMTPUser,
		Password: config.SMTPPassword,
		From:     config.SMTPFrom,
	})
	if err != nil {
		return nil, err
	}
	return notify.NewDispatcher(policy, sender, logger), nil
}

func (c *CompositionRoot) CreateCreateForwardingOrderCommandHandler() commands.CreateForwardingOrderCommandHandler {
	return commands.NewCreateForwardingOrderCommandHandler(commands.NewForwardingUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreatePropagateForwardingResponseCommandHandler() commands.PropagateForwardingResponseCommandHandler {
	return commands.NewPropagateForwardingResponseCommandHandler(commands.NewForwardingUoWFactory(c.uowFactory), c.logger)
}

func (c *CompositionRoot) CreateRecordForwardingResponseCommandHandler() commands.RecordForwardingResponseCommandHandler {
	return commands.NewRecordForwardingResponseCommandHandler(
		commands.NewForwardingUoWFactory(c.uowFactory),
		c.notifier,
		c.CreatePropagateForwardingResponseCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateDeleteForwardingOrderCommandHandler() commands.DeleteForwardingOrderCommandHandler {
	return commands.NewDeleteForwardingOrderCommandHandler(commands.NewForwardingUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateCreateTransportRequestCommandHandler() commands.CreateTransportRequestCommandHandler {
	return commands.NewCreateTransportRequestCommandHandler(commands.NewRequestUoWFactory(c.uowFactory), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateApproveTransportRequestCommandHandler() commands.ApproveTransportRequestCommandHandler {
	return commands.NewApproveTransportRequestCommandHandler(
		commands.NewApprovalUoWFactory(c.uowFactory),
		commands.NewRequestUoWFactory(c.uowFactory),
		c.notifier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRejectTransportRequestCommandHandler() commands.RejectTransportRequestCommandHandler {
	return commands.NewRejectTransportRequestCommandHandler(commands.NewRequestUoWFactory(c.uowFactory), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateEditTransportRequestCommandHandler() commands.EditTransportRequestCommandHandler {
	return commands.NewEditTransportRequestCommandHandler(commands.NewRequestUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateListForwardingOrdersQueryHandler() queries.ListForwardingOrdersQueryHandler {
	return queries.NewListForwardingOrdersQueryHandler(c.sqlxDB, c.logger)
}

func (c *CompositionRoot) CreateGetForwardingOrderQueryHandler() queries.GetForwardingOrderQueryHandler {
	return queries.NewGetForwardingOrderQueryHandler(c.sqlxDB, c.logger)
}

func (c *CompositionRoot) CreateListTransportRequestsQueryHandler() queries.ListTransportRequestsQueryHandler {
	return queries.NewListTransportRequestsQueryHandler(c.sqlxDB)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	handlers := http.Handlers{
		CreateForwardingOrder:    c.CreateCreateForwardingOrderCommandHandler(),
		RecordForwardingResponse: c.CreateRecordForwardingResponseCommandHandler(),
		DeleteForwardingOrder:    c.CreateDeleteForwardingOrderCommandHandler(),
		ListForwardingOrders:     c.CreateListForwardingOrdersQueryHandler(),
		GetForwardingOrder:       c.CreateGetForwardingOrderQueryHandler(),

		CreateTransportRequest:  c.CreateCreateTransportRequestCommandHandler(),
		ApproveTransportRequest: c.CreateApproveTransportRequestCommandHandler(),
		RejectTransportRequest:  c.CreateRejectTransportRequestCommandHandler(),
		EditTransportRequest:    c.CreateEditTransportRequestCommandHandler(),
		ListTransportRequests:   c.CreateListTransportRequestsQueryHandler(),
	}
	return http.NewServer(
		handlers,
		session.NewRedisStore(c.redis),
		userrepo.NewSqlxUserRepository(c.sqlxDB),
		c.config.SessionCookie,
		c.logger,
	)
}
