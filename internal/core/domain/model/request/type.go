package request

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Type selects the shape of a request.
type Type string

const (
	TypeStandard  Type = "standard"
	TypeWarehouse Type = "warehouse"
)

// ParseType treats an empty value as standard.
func ParseType(s string) (Type, error) {
	if s == "" {
		return TypeStandard, nil
	}
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	switch t {
	case TypeStandard, TypeWarehouse:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transport_type", fmt.Errorf("%q is not a valid transport type", string(t)))
	}
}

func (t Type) String() string { return string(t) }
