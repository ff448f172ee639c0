package request

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status of a transport request.
//
//	pending ──┬──> approved
//	          └──> rejected
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid request status", string(s)))
	}
}

func (s Status) String() string { return string(s) }

// Approve transitions pending to approved.
func (s Status) Approve() (Status, error) {
	if s != StatusPending {
		return "", fmt.Errorf("%s is not a valid status to approve", s)
	}
	return StatusApproved, nil
}

// Reject transitions pending to rejected.
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return "", fmt.Errorf("%s is not a valid status to reject", s)
	}
	return StatusRejected, nil
}
