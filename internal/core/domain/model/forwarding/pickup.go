package forwarding

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// PickupLocation is where the carrier collects the goods.
type PickupLocation string

const (
	PickupBialystok PickupLocation = "magazyn_bialystok"
	PickupZielonka  PickupLocation = "magazyn_zielonka"
	PickupProducer  PickupLocation = "producer"
)

func ParsePickupLocation(s string) (PickupLocation, error) {
	p := PickupLocation(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

func (p PickupLocation) Validate() error {
	switch p {
	case PickupBialystok, PickupZielonka, PickupProducer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("location", fmt.Errorf("%q is not a valid pickup location", string(p)))
	}
}

// Warehouse returns the company warehouse for warehouse pickups.
func (p PickupLocation) Warehouse() (kernel.Warehouse, bool) {
	switch p {
	case PickupBialystok:
		return kernel.WarehouseBialystok, true
	case PickupZielonka:
		return kernel.WarehouseZielonka, true
	case PickupProducer:
	}
	return "", false
}

func (p PickupLocation) String() string { return string(p) }
