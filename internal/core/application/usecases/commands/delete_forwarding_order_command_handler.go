package commands

import (
	"context"

	"logistics/internal/pkg/errs"
)

type DeleteForwardingOrderCommandHandler struct {
	uowFactory ForwardingUoWFactory
}

func NewDeleteForwardingOrderCommandHandler(uowFactory ForwardingUoWFactory) DeleteForwardingOrderCommandHandler {
	return DeleteForwardingOrderCommandHandler{uowFactory: uowFactory}
}

func (h DeleteForwardingOrderCommandHandler) Handle(ctx context.Context, command DeleteForwardingOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if !command.Actor().IsAdmin() {
		return errs.NewForbiddenError(command.Actor().Email(), "delete forwarding orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ForwardingOrderRepository().Delete(ctx, command.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
