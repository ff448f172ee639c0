package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/request"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrListTransportRequestsQueryIsNotConstructed = errors.New(
	"ListTransportRequestsQuery must be created via NewListTransportRequestsQuery constructor",
)

// ListTransportRequestsQuery lists requests visible to actor. Users who cannot
// approve only ever see their own requests. The date range bounds the delivery
// date and is inclusive on both ends.
type ListTransportRequestsQuery struct {
	actor    access.User
	status   *request.Status
	dateFrom *time.Time
	dateTo   *time.Time

	guard guard.ConstructorGuard
}

// NewListTransportRequestsQuery treats empty strings as absent filters. Dates
// use the YYYY-MM-DD layout.
func NewListTransportRequestsQuery(
	actor access.User,
	status, dateFrom, dateTo string,
) (ListTransportRequestsQuery, error) {
	if actor.Email() == "" {
		return ListTransportRequestsQuery{}, errs.NewUnauthenticatedError()
	}

	q := ListTransportRequestsQuery{actor: actor, guard: guard.NewConstructorGuard()}
	var problems []error
	if status != "" {
		s, err := request.ParseStatus(status)
		if err != nil {
			problems = append(problems, err)
		} else {
			q.status = &s
		}
	}
	if dateFrom != "" {
		d, err := request.ParseDate(dateFrom)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("dateFrom", err))
		} else {
			q.dateFrom = &d
		}
	}
	if dateTo != "" {
		d, err := request.ParseDate(dateTo)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("dateTo", err))
		} else {
			q.dateTo = &d
		}
	}
	if err := errors.Join(problems...); err != nil {
		return ListTransportRequestsQuery{}, err
	}
	if q.dateFrom != nil && q.dateTo != nil && q.dateTo.Before(*q.dateFrom) {
		return ListTransportRequestsQuery{}, errs.NewValueIsOutOfRangeError(
			"dateTo", dateTo, dateFrom, "",
		)
	}
	return q, nil
}

func (q ListTransportRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListTransportRequestsQueryIsNotConstructed)
}

func (q ListTransportRequestsQuery) Actor() access.User     { return q.actor }
func (q ListTransportRequestsQuery) Status() *request.Status { return q.status }
func (q ListTransportRequestsQuery) DateFrom() *time.Time    { return q.dateFrom }
func (q ListTransportRequestsQuery) DateTo() *time.Time      { return q.dateTo }

// OwnOnly reports whether the listing is restricted to the actor's requests.
func (q ListTransportRequestsQuery) OwnOnly() bool {
	return !q.actor.CanPerform(access.ApproveTransportRequests)
}
