package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRejectTransportRequestCommandIsNotConstructed = errors.New(
	"RejectTransportRequestCommand must be created via NewRejectTransportRequestCommand constructor",
)

type RejectTransportRequestCommand struct {
	actor      access.User
	requestID  int64
	reason     string
	rejectedAt time.Time

	guard guard.ConstructorGuard
}

func NewRejectTransportRequestCommand(
	actor access.User,
	requestID int64,
	reason string,
	rejectedAt time.Time,
) (RejectTransportRequestCommand, error) {
	if err := requireActor(actor); err != nil {
		return RejectTransportRequestCommand{}, err
	}
	if requestID <= 0 {
		return RejectTransportRequestCommand{}, errs.NewValueIsRequiredError("requestId")
	}

	return RejectTransportRequestCommand{
		actor:      actor,
		requestID:  requestID,
		reason:     strings.TrimSpace(reason),
		rejectedAt: rejectedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RejectTransportRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectTransportRequestCommandIsNotConstructed)
}

func (c RejectTransportRequestCommand) Actor() access.User    { return c.actor }
func (c RejectTransportRequestCommand) RequestID() int64      { return c.requestID }
func (c RejectTransportRequestCommand) Reason() string        { return c.reason }
func (c RejectTransportRequestCommand) RejectedAt() time.Time { return c.rejectedAt }
