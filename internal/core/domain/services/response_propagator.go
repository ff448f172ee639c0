package services

import (
	"errors"

	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/pkg/errs"
)

// ErrTargetHasResponse is returned when a connected order already holds a response.
var ErrTargetHasResponse = errors.New("connected order already has a response")

// ResponsePropagator applies a source order's response to a connected order.
type ResponsePropagator struct{}

func NewResponsePropagator() ResponsePropagator {
	return ResponsePropagator{}
}

// Propagate derives the response for target from main and stores it on target.
// A target that already holds a non-empty response is left untouched and
// ErrTargetHasResponse is returned.
func (p ResponsePropagator) Propagate(main forwarding.Response, sourceOrderID int64, target *forwarding.Order) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target.ID() == sourceOrderID {
		return errs.NewValueIsInvalidError("connectedTransports")
	}
	if target.HasResponse() {
		return ErrTargetHasResponse
	}
	return target.AcceptPropagatedResponse(main.DeriveFor(target, sourceOrderID))
}
