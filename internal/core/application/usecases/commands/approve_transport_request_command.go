package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrApproveTransportRequestCommandIsNotConstructed = errors.New(
	"ApproveTransportRequestCommand must be created via NewApproveTransportRequestCommand constructor",
)

type ApproveTransportRequestCommand struct {
	actor           access.User
	requestID       int64
	sourceWarehouse kernel.Warehouse
	approvedAt      time.Time

	guard guard.ConstructorGuard
}

func NewApproveTransportRequestCommand(
	actor access.User,
	requestID int64,
	sourceWarehouse string,
	approvedAt time.Time,
) (ApproveTransportRequestCommand, error) {
	if err := requireActor(actor); err != nil {
		return ApproveTransportRequestCommand{}, err
	}

	var errList []error
	if requestID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("requestId"))
	}
	warehouse, err := kernel.ParseWarehouse(sourceWarehouse)
	if err != nil {
		errList = append(errList, err)
	}
	if len(errList) > 0 {
		return ApproveTransportRequestCommand{}, errors.Join(errList...)
	}

	return ApproveTransportRequestCommand{
		actor:           actor,
		requestID:       requestID,
		sourceWarehouse: warehouse,
		approvedAt:      approvedAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveTransportRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveTransportRequestCommandIsNotConstructed)
}

func (c ApproveTransportRequestCommand) Actor() access.User                { return c.actor }
func (c ApproveTransportRequestCommand) RequestID() int64                  { return c.requestID }
func (c ApproveTransportRequestCommand) SourceWarehouse() kernel.Warehouse { return c.sourceWarehouse }
func (c ApproveTransportRequestCommand) ApprovedAt() time.Time             { return c.approvedAt }
