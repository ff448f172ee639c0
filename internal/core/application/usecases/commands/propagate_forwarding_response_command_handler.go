package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/services"

	"github.com/sirupsen/logrus"
)

// PropagationFailure describes a connected order that could not be updated.
type PropagationFailure struct {
	OrderID int64  `json:"orderId"`
	Error   string `json:"error"`
}

// PropagationReport lists the outcome for every connected order.
type PropagationReport struct {
	Propagated []int64              `json:"propagated"`
	Skipped    []int64              `json:"skipped"`
	Failed     []PropagationFailure `json:"failed"`
}

// PropagateForwardingResponseCommandHandler updates each connected order in its
// own transaction so that one failing target does not roll back the others.
// Each target is row-locked while its current response is checked.
type PropagateForwardingResponseCommandHandler struct {
	uowFactory ForwardingUoWFactory
	propagator services.ResponsePropagator
	logger     logrus.FieldLogger
}

func NewPropagateForwardingResponseCommandHandler(
	uowFactory ForwardingUoWFactory,
	logger logrus.FieldLogger,
) PropagateForwardingResponseCommandHandler {
	return PropagateForwardingResponseCommandHandler{
		uowFactory: uowFactory,
		propagator: services.NewResponsePropagator(),
		logger:     logger.WithField("component", "propagate-forwarding-response"),
	}
}

// Handle returns an error only for an invalid command; per-target failures are
// reported in the result.
func (h PropagateForwardingResponseCommandHandler) Handle(
	ctx context.Context,
	command PropagateForwardingResponseCommand,
) (PropagationReport, error) {
	if err := command.Validate(); err != nil {
		return PropagationReport{}, err
	}

	report := PropagationReport{
		Propagated: []int64{},
		Skipped:    []int64{},
		Failed:     []PropagationFailure{},
	}

	for _, targetID := range command.TargetIDs() {
		log := h.logger.WithFields(logrus.Fields{"source": command.SourceOrderID(), "target": targetID})

		err := h.propagateOne(ctx, command, targetID)
		switch {
		case err == nil:
			report.Propagated = append(report.Propagated, targetID)
			log.Info("response propagated")
		case errors.Is(err, services.ErrTargetHasResponse):
			report.Skipped = append(report.Skipped, targetID)
			log.Info("connected order already has a response")
		default:
			report.Failed = append(report.Failed, PropagationFailure{OrderID: targetID, Error: err.Error()})
			log.WithError(err).Error("response propagation failed")
		}
	}

	return report, nil
}

func (h PropagateForwardingResponseCommandHandler) propagateOne(
	ctx context.Context,
	command PropagateForwardingResponseCommand,
	targetID int64,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ForwardingOrderRepository()

	target, err := repo.GetForUpdate(ctx, targetID)
	if err != nil {
		return err
	}

	if err = h.propagator.Propagate(command.Response(), command.SourceOrderID(), target); err != nil {
		return err
	}

	if err = repo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
