package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrEditTransportRequestCommandIsNotConstructed = errors.New(
	"EditTransportRequestCommand must be created via NewEditTransportRequestCommand constructor",
)

// EditTransportRequestCommand carries a free-form field map. Protected and
// unknown fields are dropped while the map is turned into a patch.
type EditTransportRequestCommand struct {
	actor     access.User
	requestID int64
	patch     request.Patch
	editedAt  time.Time

	guard guard.ConstructorGuard
}

func NewEditTransportRequestCommand(
	actor access.User,
	requestID int64,
	fields map[string]any,
	editedAt time.Time,
) (EditTransportRequestCommand, error) {
	if err := requireActor(actor); err != nil {
		return EditTransportRequestCommand{}, err
	}
	if requestID <= 0 {
		return EditTransportRequestCommand{}, errs.NewValueIsRequiredError("requestId")
	}

	patch, err := request.PatchFromFields(fields)
	if err != nil {
		return EditTransportRequestCommand{}, err
	}

	return EditTransportRequestCommand{
		actor:     actor,
		requestID: requestID,
		patch:     patch,
		editedAt:  editedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c EditTransportRequestCommand) Validate() error {
	return c.guard.Validate(ErrEditTransportRequestCommandIsNotConstructed)
}

func (c EditTransportRequestCommand) Actor() access.User   { return c.actor }
func (c EditTransportRequestCommand) RequestID() int64     { return c.requestID }
func (c EditTransportRequestCommand) Patch() request.Patch { return c.patch }
func (c EditTransportRequestCommand) EditedAt() time.Time  { return c.editedAt }
