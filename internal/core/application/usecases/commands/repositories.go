// Package commands contains the operations that change state. Every command is
// built through its constructor, which validates its input, and is executed by
// a handler that owns the transaction boundary.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ForwardingRepoFactory interface {
		ForwardingOrderRepository() ports.ForwardingOrderRepository
	}

	RequestRepoFactory interface {
		TransportRequestRepository() ports.TransportRequestRepository
	}

	TransportRepoFactory interface {
		TransportRepository() ports.TransportRepository
	}

	// ForwardingUoW manages transactions for forwarding-order operations.
	ForwardingUoW interface {
		TxManager
		ForwardingRepoFactory
	}

	ForwardingUoWFactory interface {
		Create() ForwardingUoW
	}

	// RequestUoW manages transactions for transport-request operations that do
	// not create transports.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// ApprovalUoW spans the request and the transport it produces.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   requests := uow.TransportRequestRepository()
	//   transports := uow.TransportRepository()
	//   // ... mark approved, insert transport, link it
	//
	//   err = uow.Commit(ctx)
	ApprovalUoW interface {
		TxManager
		RequestRepoFactory
		TransportRepoFactory
	}

	ApprovalUoWFactory interface {
		Create() ApprovalUoW
	}
)

type (
	forwardingUoWFactory struct{ factory ports.UnitOfWorkFactory }
	requestUoWFactory    struct{ factory ports.UnitOfWorkFactory }
	approvalUoWFactory   struct{ factory ports.UnitOfWorkFactory }
)

func (f forwardingUoWFactory) Create() ForwardingUoW { return f.factory.Create() }
func (f requestUoWFactory) Create() RequestUoW       { return f.factory.Create() }
func (f approvalUoWFactory) Create() ApprovalUoW     { return f.factory.Create() }

// NewForwardingUoWFactory narrows a full unit of work factory.
func NewForwardingUoWFactory(factory ports.UnitOfWorkFactory) ForwardingUoWFactory {
	return forwardingUoWFactory{factory: factory}
}

func NewRequestUoWFactory(factory ports.UnitOfWorkFactory) RequestUoWFactory {
	return requestUoWFactory{factory: factory}
}

func NewApprovalUoWFactory(factory ports.UnitOfWorkFactory) ApprovalUoWFactory {
	return approvalUoWFactory{factory: factory}
}
