package commands

import (
	"context"

	"logistics/internal/core/domain/model/request"
)

type EditTransportRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewEditTransportRequestCommandHandler(uowFactory RequestUoWFactory) EditTransportRequestCommandHandler {
	return EditTransportRequestCommandHandler{uowFactory: uowFactory}
}

// Handle returns the edited request.
func (h EditTransportRequestCommandHandler) Handle(
	ctx context.Context,
	command EditTransportRequestCommand,
) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TransportRequestRepository()

	req, err := repo.GetForUpdate(ctx, command.RequestID())
	if err != nil {
		return nil, err
	}

	if err = req.Edit(command.Actor().Email(), command.Patch(), command.EditedAt()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}
