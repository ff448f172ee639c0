package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/core/domain/model/transport"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/sirupsen/logrus"
)

type ApproveTransportRequestResult struct {
	TransportID   int64
	WarehouseName string
	Notification  ports.NotificationResult
}

// ApproveTransportRequestCommandHandler marks a request approved, schedules its
// transport and links the two in one transaction. When a write fails after the
// approval started, the transaction is rolled back and the request is reset to
// pending through a separate unit of work before the error is returned.
type ApproveTransportRequestCommandHandler struct {
	approvalFactory ApprovalUoWFactory
	requestFactory  RequestUoWFactory
	planner         services.TransportPlanner
	notifier        ports.Notifier
	logger          logrus.FieldLogger
}

func NewApproveTransportRequestCommandHandler(
	approvalFactory ApprovalUoWFactory,
	requestFactory RequestUoWFactory,
	notifier ports.Notifier,
	logger logrus.FieldLogger,
) ApproveTransportRequestCommandHandler {
	return ApproveTransportRequestCommandHandler{
		approvalFactory: approvalFactory,
		requestFactory:  requestFactory,
		planner:         services.NewTransportPlanner(),
		notifier:        notifier,
		logger:          logger.WithField("component", "approve-transport-request"),
	}
}

func (h ApproveTransportRequestCommandHandler) Handle(
	ctx context.Context,
	command ApproveTransportRequestCommand,
) (ApproveTransportRequestResult, error) {
	if err := command.Validate(); err != nil {
		return ApproveTransportRequestResult{}, err
	}
	if err := authorize(command.Actor(), access.ApproveTransportRequests, "approve transport requests"); err != nil {
		return ApproveTransportRequestResult{}, err
	}

	log := h.logger.WithFields(logrus.Fields{
		"request":   command.RequestID(),
		"warehouse": command.SourceWarehouse(),
	})

	req, transportID, started, err := h.approve(ctx, command)
	if err != nil {
		if started {
			h.compensate(ctx, command.RequestID(), log)
			return ApproveTransportRequestResult{}, errs.NewPartialFailureError(
				fmt.Sprintf("approve transport request %d", command.RequestID()), err)
		}
		return ApproveTransportRequestResult{}, err
	}

	log.WithField("transport", transportID).Info("transport request approved")

	warehouseName := command.SourceWarehouse().DisplayName()
	return ApproveTransportRequestResult{
		TransportID:   transportID,
		WarehouseName: warehouseName,
		Notification: dispatch(ctx, h.notifier, log, ports.Notification{
			Kind:          ports.NotifyTransportRequestApproved,
			Actor:         command.Actor().Email(),
			Request:       req,
			TransportID:   transportID,
			WarehouseName: warehouseName,
		}),
	}, nil
}

// approve reports started once the first write was attempted. Failures before
// that leave nothing to compensate.
func (h ApproveTransportRequestCommandHandler) approve(
	ctx context.Context,
	command ApproveTransportRequestCommand,
) (*request.Request, int64, bool, error) {
	uow := h.approvalFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, 0, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requests := uow.TransportRequestRepository()

	req, err := requests.GetForUpdate(ctx, command.RequestID())
	if err != nil {
		return nil, 0, false, err
	}

	if err = req.Approve(command.Actor().Email(), command.ApprovedAt()); err != nil {
		return nil, 0, false, err
	}

	plan, err := h.planner.Plan(req, command.SourceWarehouse())
	if err != nil {
		return nil, 0, false, err
	}

	scheduled, err := transport.NewTransport(plan)
	if err != nil {
		return nil, 0, false, err
	}

	if err = requests.Update(ctx, req); err != nil {
		return nil, 0, true, err
	}

	transportID, err := uow.TransportRepository().Add(ctx, scheduled)
	if err != nil {
		return nil, 0, true, err
	}

	if err = req.LinkTransport(transportID); err != nil {
		return nil, 0, true, err
	}

	if err = requests.Update(ctx, req); err != nil {
		return nil, 0, true, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, 0, true, err
	}

	return req, transportID, true, nil
}

// compensate resets the request to pending unless a transport got linked to it
// in the meantime. A failed reset is logged and does not replace the original error.
func (h ApproveTransportRequestCommandHandler) compensate(ctx context.Context, requestID int64, log logrus.FieldLogger) {
	uow := h.requestFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.WithError(err).Error("approval compensation could not start")
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TransportRequestRepository().ResetApproval(ctx, requestID); err != nil {
		log.WithError(err).Error("approval compensation failed")
		return
	}

	if err := uow.Commit(ctx); err != nil {
		log.WithError(err).Error("approval compensation commit failed")
		return
	}

	log.Warn("approval rolled back, request reset to pending")
}
