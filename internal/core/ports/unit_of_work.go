package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary. Repositories obtained from it use the
// transaction started by Begin; without Begin they run on the plain connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ForwardingOrderRepository() ForwardingOrderRepository
	TransportRequestRepository() TransportRequestRepository
	TransportRepository() TransportRepository
}
