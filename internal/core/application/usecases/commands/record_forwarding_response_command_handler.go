package commands

import (
	"context"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/core/ports"

	"github.com/sirupsen/logrus"
)

// RecordForwardingResponseResult is the reloaded order plus the advisory
// outcomes of the notification and the propagation.
type RecordForwardingResponseResult struct {
	Order        *forwarding.Order
	Notification ports.NotificationResult
	Propagation  *PropagationReport
}

// RecordForwardingResponseCommandHandler stores the response, reloads the order,
// notifies the creator and then propagates to connected orders. Neither the
// notification nor the propagation can fail the recorded response.
type RecordForwardingResponseCommandHandler struct {
	uowFactory ForwardingUoWFactory
	notifier   ports.Notifier
	propagate  PropagateForwardingResponseCommandHandler
	logger     logrus.FieldLogger
}

func NewRecordForwardingResponseCommandHandler(
	uowFactory ForwardingUoWFactory,
	notifier ports.Notifier,
	propagate PropagateForwardingResponseCommandHandler,
	logger logrus.FieldLogger,
) RecordForwardingResponseCommandHandler {
	return RecordForwardingResponseCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		propagate:  propagate,
		logger:     logger.WithField("component", "record-forwarding-response"),
	}
}

func (h RecordForwardingResponseCommandHandler) Handle(
	ctx context.Context,
	command RecordForwardingResponseCommand,
) (RecordForwardingResponseResult, error) {
	if err := command.Validate(); err != nil {
		return RecordForwardingResponseResult{}, err
	}
	if err := authorize(command.Actor(), access.RespondForwardingOrders, "respond to forwarding orders"); err != nil {
		return RecordForwardingResponseResult{}, err
	}

	order, err := h.record(ctx, command)
	if err != nil {
		return RecordForwardingResponseResult{}, err
	}

	log := h.logger.WithField("order", command.OrderID())

	reloaded, err := h.uowFactory.Create().ForwardingOrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		log.WithError(err).Warn("reload after response failed, using in-memory state")
		reloaded = order
	}

	result := RecordForwardingResponseResult{Order: reloaded}
	result.Notification = dispatch(ctx, h.notifier, log, ports.Notification{
		Kind:  ports.NotifyForwardingResponse,
		Actor: command.Actor().Email(),
		Order: reloaded,
	})

	if len(command.ConnectedOrderIDs()) == 0 {
		return result, nil
	}

	main := reloaded.Response()
	if main == nil {
		main = order.Response()
	}
	propagateCmd, err := NewPropagateForwardingResponseCommand(command.OrderID(), *main, command.ConnectedOrderIDs())
	if err != nil {
		log.WithError(err).Warn("connected orders ignored")
		return result, nil
	}
	report, err := h.propagate.Handle(ctx, propagateCmd)
	if err != nil {
		log.WithError(err).Warn("propagation failed")
		return result, nil
	}
	result.Propagation = &report
	return result, nil
}

func (h RecordForwardingResponseCommandHandler) record(
	ctx context.Context,
	command RecordForwardingResponseCommand,
) (*forwarding.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ForwardingOrderRepository()

	order, err := repo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = order.RecordResponse(command.Response()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
