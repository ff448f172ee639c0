package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateForwardingOrderCommandIsNotConstructed = errors.New(
	"CreateForwardingOrderCommand must be created via NewCreateForwardingOrderCommand constructor",
)

// CreateForwardingOrderCommand places a new freight-forwarding order. The order
// number is issued by the handler.
type CreateForwardingOrderCommand struct {
	actor     access.User
	details   forwarding.Details
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCreateForwardingOrderCommand validates the order details up front so that
// no transaction is opened for invalid input.
func NewCreateForwardingOrderCommand(
	actor access.User,
	details forwarding.Details,
	createdAt time.Time,
) (CreateForwardingOrderCommand, error) {
	if err := requireActor(actor); err != nil {
		return CreateForwardingOrderCommand{}, err
	}
	if createdAt.IsZero() {
		return CreateForwardingOrderCommand{}, errs.NewValueIsRequiredError("createdAt")
	}

	creator := forwarding.Creator{Name: actor.Name(), Email: actor.Email()}
	if _, err := forwarding.NewOrder(forwarding.OrderNumber{}, creator, details, createdAt); err != nil {
		return CreateForwardingOrderCommand{}, err
	}

	return CreateForwardingOrderCommand{
		actor:     actor,
		details:   details,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateForwardingOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateForwardingOrderCommandIsNotConstructed)
}

func (c CreateForwardingOrderCommand) Actor() access.User          { return c.actor }
func (c CreateForwardingOrderCommand) Details() forwarding.Details { return c.details }
func (c CreateForwardingOrderCommand) CreatedAt() time.Time        { return c.createdAt }
