package commands

import (
	"errors"
	"slices"

	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrPropagateForwardingResponseCommandIsNotConstructed = errors.New(
	"PropagateForwardingResponseCommand must be created via NewPropagateForwardingResponseCommand constructor",
)

// PropagateForwardingResponseCommand copies a source order's response onto its
// connected orders.
type PropagateForwardingResponseCommand struct {
	sourceOrderID int64
	response      forwarding.Response
	targetIDs     []int64

	guard guard.ConstructorGuard
}

// NewPropagateForwardingResponseCommand drops duplicates and the source itself
// from the target list.
func NewPropagateForwardingResponseCommand(
	sourceOrderID int64,
	response forwarding.Response,
	targetIDs []int64,
) (PropagateForwardingResponseCommand, error) {
	if sourceOrderID <= 0 {
		return PropagateForwardingResponseCommand{}, errs.NewValueIsRequiredError("id")
	}

	targets := make([]int64, 0, len(targetIDs))
	for _, id := range targetIDs {
		if id <= 0 {
			return PropagateForwardingResponseCommand{}, errs.NewValueIsInvalidError("connectedTransports")
		}
		if id == sourceOrderID || slices.Contains(targets, id) {
			continue
		}
		targets = append(targets, id)
	}

	return PropagateForwardingResponseCommand{
		sourceOrderID: sourceOrderID,
		response:      response,
		targetIDs:     targets,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c PropagateForwardingResponseCommand) Validate() error {
	return c.guard.Validate(ErrPropagateForwardingResponseCommandIsNotConstructed)
}

func (c PropagateForwardingResponseCommand) SourceOrderID() int64          { return c.sourceOrderID }
func (c PropagateForwardingResponseCommand) Response() forwarding.Response { return c.response }
func (c PropagateForwardingResponseCommand) TargetIDs() []int64            { return slices.Clone(c.targetIDs) }
