package forwarding

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status of a forwarding order. Completion is set by the surrounding system;
// recording a response does not imply it.
type Status string

const (
	StatusNew       Status = "new"
	StatusCompleted Status = "completed"
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
	case StatusNew, StatusCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", string(s)))
	}
}

func (s Status) String() string { return string(s) }
