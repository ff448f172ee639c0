package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

var postalCodePattern = regexp.MustCompile(`^\d{2}-\d{3}$`)

// Address is an immutable postal address. Only the city is mandatory; legacy rows
// frequently carry just a city name.
type Address struct { //nolint:recvcheck //using for validation
	city       string
	postalCode string
	street     string
	guard      guard.ConstructorGuard
}

// NewAddress trims its inputs and validates them. A postal code, when present,
// must use the NN-NNN format.
func NewAddress(city, postalCode, street string) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}
	if err := errors.Join(a.setCity(city), a.setPostalCode(postalCode)); err != nil {
		return Address{}, err
	}
	a.street = strings.TrimSpace(street)
	return a, nil
}

// MustNewAddress is used for the fixed warehouse table.
func MustNewAddress(city, postalCode, street string) Address {
	a, err := NewAddress(city, postalCode, street)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) City() string       { return a.city }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Street() string     { return a.street }

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) IsEqual(other Address) bool {
	return a.city == other.city && a.postalCode == other.postalCode && a.street == other.street
}

func (a Address) String() string {
	parts := make([]string, 0, 3)
	if a.street != "" {
		parts = append(parts, a.street)
	}
	if a.postalCode != "" {
		parts = append(parts, a.postalCode+" "+a.city)
	} else {
		parts = append(parts, a.city)
	}
	return strings.Join(parts, ", ")
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if err := ValidatePostalCode(postalCode); err != nil {
		return err
	}
	a.postalCode = postalCode
	return nil
}

// ValidatePostalCode accepts an empty code or one in the NN-NNN format.
func ValidatePostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode != "" && !postalCodePattern.MatchString(postalCode) {
		return errs.NewValueIsInvalidErrorWithCause("postal_code",
			fmt.Errorf("%q does not match NN-NNN", postalCode))
	}
	return nil
}
