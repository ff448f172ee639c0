package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/pkg/errs"
)

// maxNumberingAttempts bounds retries after a duplicate order number.
const maxNumberingAttempts = 3

// CreateForwardingOrderResult identifies the created order.
type CreateForwardingOrderResult struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"orderNumber"`
}

// CreateForwardingOrderCommandHandler issues the next order number and inserts
// the order in the same transaction. The repository serializes numbering per
// month bucket; a unique index on the number backs it up, and a conflict is
// retried with a fresh transaction.
type CreateForwardingOrderCommandHandler struct {
	uowFactory ForwardingUoWFactory
}

func NewCreateForwardingOrderCommandHandler(uowFactory ForwardingUoWFactory) CreateForwardingOrderCommandHandler {
	return CreateForwardingOrderCommandHandler{uowFactory: uowFactory}
}

func (h CreateForwardingOrderCommandHandler) Handle(
	ctx context.Context,
	command CreateForwardingOrderCommand,
) (CreateForwardingOrderResult, error) {
	if err := command.Validate(); err != nil {
		return CreateForwardingOrderResult{}, err
	}

	var err error
	for range maxNumberingAttempts {
		var result CreateForwardingOrderResult
		result, err = h.create(ctx, command)
		if !errors.Is(err, errs.ErrConflict) {
			return result, err
		}
	}
	return CreateForwardingOrderResult{}, err
}

func (h CreateForwardingOrderCommandHandler) create(
	ctx context.Context,
	command CreateForwardingOrderCommand,
) (CreateForwardingOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateForwardingOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ForwardingOrderRepository()
	at := command.CreatedAt()

	if err := repo.LockNumbering(ctx, at); err != nil {
		return CreateForwardingOrderResult{}, err
	}

	from, to := forwarding.MonthBucket(at)
	numbers, err := repo.NumbersCreatedBetween(ctx, from, to)
	if err != nil {
		return CreateForwardingOrderResult{}, err
	}
	number := forwarding.NextOrderNumber(forwarding.HighestOrderNumber(numbers), at)

	actor := command.Actor()
	order, err := forwarding.NewOrder(number, forwarding.Creator{Name: actor.Name(), Email: actor.Email()},
		command.Details(), at)
	if err != nil {
		return CreateForwardingOrderResult{}, err
	}

	id, err := repo.Add(ctx, order)
	if err != nil {
		return CreateForwardingOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateForwardingOrderResult{}, err
	}

	return CreateForwardingOrderResult{ID: id, OrderNumber: number.String()}, nil
}
