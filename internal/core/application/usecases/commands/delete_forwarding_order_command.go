package commands

import (
	"errors"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDeleteForwardingOrderCommandIsNotConstructed = errors.New(
	"DeleteForwardingOrderCommand must be created via NewDeleteForwardingOrderCommand constructor",
)

// DeleteForwardingOrderCommand hard-deletes an order. Administrators only.
type DeleteForwardingOrderCommand struct {
	actor   access.User
	orderID int64

	guard guard.ConstructorGuard
}

func NewDeleteForwardingOrderCommand(actor access.User, orderID int64) (DeleteForwardingOrderCommand, error) {
	if err := requireActor(actor); err != nil {
		return DeleteForwardingOrderCommand{}, err
	}
	if orderID <= 0 {
		return DeleteForwardingOrderCommand{}, errs.NewValueIsRequiredError("id")
	}
	return DeleteForwardingOrderCommand{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteForwardingOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteForwardingOrderCommandIsNotConstructed)
}

func (c DeleteForwardingOrderCommand) Actor() access.User { return c.actor }
func (c DeleteForwardingOrderCommand) OrderID() int64     { return c.orderID }
