package queries

import (
	"errors"

	"logistics/internal/core/domain/model/forwarding"
	"logistics/internal/pkg/guard"
)

var ErrListForwardingOrdersQueryIsNotConstructed = errors.New(
	"ListForwardingOrdersQuery must be created via NewListForwardingOrdersQuery constructor",
)

// ListForwardingOrdersQuery lists orders newest first, optionally narrowed to
// one status.
type ListForwardingOrdersQuery struct {
	status *forwarding.Status

	guard guard.ConstructorGuard
}

// NewListForwardingOrdersQuery treats an empty status as no filter.
func NewListForwardingOrdersQuery(status string) (ListForwardingOrdersQuery, error) {
	q := ListForwardingOrdersQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}
	s, err := forwarding.ParseStatus(status)
	if err != nil {
		return ListForwardingOrdersQuery{}, err
	}
	q.status = &s
	return q, nil
}

func (q ListForwardingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListForwardingOrdersQueryIsNotConstructed)
}

func (q ListForwardingOrdersQuery) Status() *forwarding.Status { return q.status }
