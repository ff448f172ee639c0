package commands

import (
	"context"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/ports"

	"github.com/sirupsen/logrus"
)

type RejectTransportRequestResult struct {
	Notification ports.NotificationResult
}

type RejectTransportRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	notifier   ports.Notifier
	logger     logrus.FieldLogger
}

func NewRejectTransportRequestCommandHandler(
	uowFactory RequestUoWFactory,
	notifier ports.Notifier,
	logger logrus.FieldLogger,
) RejectTransportRequestCommandHandler {
	return RejectTransportRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.WithField("component", "reject-transport-request"),
	}
}

func (h RejectTransportRequestCommandHandler) Handle(
	ctx context.Context,
	command RejectTransportRequestCommand,
) (RejectTransportRequestResult, error) {
	if err := command.Validate(); err != nil {
		return RejectTransportRequestResult{}, err
	}
	if err := authorize(command.Actor(), access.ApproveTransportRequests, "reject transport requests"); err != nil {
		return RejectTransportRequestResult{}, err
	}

	req, err := h.reject(ctx, command)
	if err != nil {
		return RejectTransportRequestResult{}, err
	}

	log := h.logger.WithField("request", command.RequestID())
	log.WithField("reason", req.RejectionReason()).Info("transport request rejected")

	return RejectTransportRequestResult{
		Notification: dispatch(ctx, h.notifier, log, ports.Notification{
			Kind:    ports.NotifyTransportRequestRejected,
			Actor:   command.Actor().Email(),
			Request: req,
		}),
	}, nil
}

func (h RejectTransportRequestCommandHandler) reject(
	ctx context.Context,
	command RejectTransportRequestCommand,
) (*request.Request, error) {
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

	if err = req.Reject(command.Actor().Email(), command.Reason(), command.RejectedAt()); err != nil {
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
