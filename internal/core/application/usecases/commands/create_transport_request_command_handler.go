package commands

import (
	"context"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/ports"

	"github.com/sirupsen/logrus"
)

type CreateTransportRequestResult struct {
	ID           int64
	Notification ports.NotificationResult
}

// CreateTransportRequestCommandHandler stores a pending request and notifies
// the managers who approve requests.
type CreateTransportRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	notifier   ports.Notifier
	logger     logrus.FieldLogger
}

func NewCreateTransportRequestCommandHandler(
	uowFactory RequestUoWFactory,
	notifier ports.Notifier,
	logger logrus.FieldLogger,
) CreateTransportRequestCommandHandler {
	return CreateTransportRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.WithField("component", "create-transport-request"),
	}
}

func (h CreateTransportRequestCommandHandler) Handle(
	ctx context.Context,
	command CreateTransportRequestCommand,
) (CreateTransportRequestResult, error) {
	if err := command.Validate(); err != nil {
		return CreateTransportRequestResult{}, err
	}
	if err := authorize(command.Actor(), access.SubmitTransportRequests, "submit transport requests"); err != nil {
		return CreateTransportRequestResult{}, err
	}

	req, err := request.NewRequest(
		request.Requester{Email: command.Actor().Email(), Name: command.Actor().Name()},
		command.Content(),
		command.CreatedAt(),
	)
	if err != nil {
		return CreateTransportRequestResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateTransportRequestResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.TransportRequestRepository().Add(ctx, req)
	if err != nil {
		return CreateTransportRequestResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateTransportRequestResult{}, err
	}

	h.logger.WithFields(logrus.Fields{"request": id, "requester": req.Requester().Email}).Info("transport request submitted")

	return CreateTransportRequestResult{
		ID: id,
		Notification: dispatch(ctx, h.notifier, h.logger.WithField("request", id), ports.Notification{
			Kind:    ports.NotifyTransportRequestCreated,
			Actor:   command.Actor().Email(),
			Request: req,
		}),
	}, nil
}
