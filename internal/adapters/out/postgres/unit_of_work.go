// Package postgres implements the unit of work over GORM. Repositories handed
// out by a unit of work share its transaction once Begin was called.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db, logger).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.TransportRequestRepository().Update(ctx, req); err != nil {
//	    return err
//	}
//	if _, err := uow.TransportRepository().Add(ctx, scheduled); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction, which
// the deferred call ignores.
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/forwardingrepo"
	"logistics/internal/adapters/out/postgres/requestrepo"
	"logistics/internal/adapters/out/postgres/transportrepo"
	"logistics/internal/core/ports"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates a fresh UnitOfWork per operation.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger logrus.FieldLogger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, logger logrus.FieldLogger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, logger: logger}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, logger: f.logger}
}

// GormUnitOfWork is not safe for concurrent use.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	logger logrus.FieldLogger
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) ForwardingOrderRepository() ports.ForwardingOrderRepository {
	return forwardingrepo.NewGormForwardingOrderRepository(uow.conn(), uow.logger)
}

func (uow *GormUnitOfWork) TransportRequestRepository() ports.TransportRequestRepository {
	return requestrepo.NewGormTransportRequestRepository(uow.conn())
}

func (uow *GormUnitOfWork) TransportRepository() ports.TransportRepository {
	return transportrepo.NewGormTransportRepository(uow.conn())
}
