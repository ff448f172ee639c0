package commands

import (
	"errors"
	"slices"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRecordForwardingResponseCommandIsNotConstructed = errors.New(
	"RecordForwardingResponseCommand must be created via NewRecordForwardingResponseCommand constructor",
)

// RecordForwardingResponseCommand stores a carrier response on an order and
// optionally propagates it to connected orders.
type RecordForwardingResponseCommand struct {
	actor             access.User
	orderID           int64
	response          forwarding.Response
	connectedOrderIDs []int64

	guard guard.ConstructorGuard
}

func NewRecordForwardingResponseCommand(
	actor access.User,
	orderID int64,
	response forwarding.Response,
	connectedOrderIDs []int64,
) (RecordForwardingResponseCommand, error) {
	if err := requireActor(actor); err != nil {
		return RecordForwardingResponseCommand{}, err
	}
	if orderID <= 0 {
		return RecordForwardingResponseCommand{}, errs.NewValueIsRequiredError("id")
	}
	if response.IsEmpty() {
		return RecordForwardingResponseCommand{}, errs.NewValueIsRequiredError("response")
	}

	return RecordForwardingResponseCommand{
		actor:             actor,
		orderID:           orderID,
		response:          response,
		connectedOrderIDs: slices.Clone(connectedOrderIDs),
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c RecordForwardingResponseCommand) Validate() error {
	return c.guard.Validate(ErrRecordForwardingResponseCommandIsNotConstructed)
}

func (c RecordForwardingResponseCommand) Actor() access.User            { return c.actor }
func (c RecordForwardingResponseCommand) OrderID() int64                { return c.orderID }
func (c RecordForwardingResponseCommand) Response() forwarding.Response { return c.response }
func (c RecordForwardingResponseCommand) ConnectedOrderIDs() []int64 {
	return slices.Clone(c.connectedOrderIDs)
}
