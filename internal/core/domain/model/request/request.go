package request

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request was not created through
	// NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
)

// DefaultRejectionReason is recorded when an approver gives no reason.
const DefaultRejectionReason = "Brak uzasadnienia"

// Requester identifies who submitted a request.
type Requester struct {
	Email string
	Name  string
}

// Decision records who approved or rejected a request and when.
type Decision struct {
	By string
	At time.Time
}

// Request is the transport request aggregate root.
type Request struct {
	id              int64
	status          Status
	requester       Requester
	content         Content
	decision        *Decision
	rejectionReason string
	transportID     *int64
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewRequest validates content for its type and creates a pending request.
func NewRequest(requester Requester, content Content, now time.Time) (*Request, error) {
	requester.Email = strings.TrimSpace(requester.Email)
	if requester.Email == "" {
		return nil, errs.NewValueIsRequiredError("requester_email")
	}
	if strings.TrimSpace(requester.Name) == "" {
		requester.Name = requester.Email
	}

	normalized, err := content.normalize(now, true)
	if err != nil {
		return nil, err
	}

	return &Request{
		status:        StatusPending,
		requester:     requester,
		content:       normalized,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreRequest rebuilds a request from storage.
func RestoreRequest(
	id int64,
	status Status,
	requester Requester,
	content Content,
	decision *Decision,
	rejectionReason string,
	transportID *int64,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:              id,
		status:          status,
		requester:       requester,
		content:         content,
		decision:        decision,
		rejectionReason: rejectionReason,
		transportID:     transportID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}
}

func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// AssignID sets the id generated by storage. It may be called once.
func (r *Request) AssignID(id int64) error {
	if r.id != 0 {
		return errs.NewConflictError("transportRequest", r.id, errors.New("id already assigned"))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	r.id = id
	return nil
}

func (r *Request) ID() int64               { return r.id }
func (r *Request) Status() Status          { return r.status }
func (r *Request) Requester() Requester    { return r.requester }
func (r *Request) Content() Content        { return r.content }
func (r *Request) RejectionReason() string { return r.rejectionReason }
func (r *Request) CreatedAt() time.Time    { return r.createdAt }
func (r *Request) UpdatedAt() time.Time    { return r.updatedAt }

func (r *Request) Decision() *Decision {
	if r.decision == nil {
		return nil
	}
	d := *r.decision
	return &d
}

func (r *Request) TransportID() *int64 {
	if r.transportID == nil {
		return nil
	}
	id := *r.transportID
	return &id
}

// IsRequestedBy compares emails case-insensitively.
func (r *Request) IsRequestedBy(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), r.requester.Email)
}

// Approve marks a pending request approved. The transport must be linked with
// LinkTransport before the change is persisted for good.
func (r *Request) Approve(approver string, at time.Time) error {
	next, err := r.status.Approve()
	if err != nil {
		return errs.NewConflictError("transportRequest", r.id, err)
	}
	r.status = next
	r.decision = &Decision{By: approver, At: at}
	r.updatedAt = at
	return nil
}

// LinkTransport records the transport produced by the approval.
func (r *Request) LinkTransport(transportID int64) error {
	if r.status != StatusApproved {
		return errs.NewConflictError("transportRequest", r.id, errors.New("only approved requests can reference a transport"))
	}
	if r.transportID != nil {
		return errs.NewConflictError("transportRequest", r.id, errors.New("transport already linked"))
	}
	if transportID <= 0 {
		return errs.NewValueIsInvalidError("transport_id")
	}
	r.transportID = &transportID
	return nil
}

// Reject marks a pending request rejected. An empty reason is replaced by
// DefaultRejectionReason.
func (r *Request) Reject(approver, reason string, at time.Time) error {
	next, err := r.status.Reject()
	if err != nil {
		return errs.NewConflictError("transportRequest", r.id, err)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRejectionReason
	}
	r.status = next
	r.decision = &Decision{By: approver, At: at}
	r.rejectionReason = reason
	r.updatedAt = at
	return nil
}

// Edit applies a content patch. Only the requester may edit and only while
// the request is pending. A changed delivery date may not lie in the past.
func (r *Request) Edit(editor string, patch Patch, now time.Time) error {
	if !r.IsRequestedBy(editor) {
		return errs.NewForbiddenError(editor, "edit a request submitted by someone else")
	}
	if r.status != StatusPending {
		return errs.NewConflictError("transportRequest", r.id, errors.New("only pending requests can be edited"))
	}

	updated := patch.applyTo(r.content)
	dateChanged := !updated.DeliveryDate.Equal(r.content.DeliveryDate)
	normalized, err := updated.normalize(now, dateChanged)
	if err != nil {
		return err
	}

	r.content = normalized
	r.updatedAt = now
	return nil
}
