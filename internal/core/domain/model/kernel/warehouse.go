package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Warehouse identifies one of the company warehouses.
type Warehouse string

const (
	WarehouseZielonka  Warehouse = "zielonka"
	WarehouseBialystok Warehouse = "bialystok"
)

// TransferClientName marks a transport as an inter-warehouse transfer.
const TransferClientName = "Przesunięcie międzymagazynowe"

type warehouseInfo struct {
	displayName string
	address     Address
}

var warehouses = map[Warehouse]warehouseInfo{
	WarehouseZielonka: {
		displayName: "Magazyn Zielonka",
		address:     MustNewAddress("Zielonka", "05-220", "ul. Kolejowa 1"),
	},
	WarehouseBialystok: {
		displayName: "Magazyn Białystok",
		address:     MustNewAddress("Białystok", "15-169", "ul. Wysockiego 69B"),
	},
}

// ParseWarehouse maps the wire value to a Warehouse.
func ParseWarehouse(s string) (Warehouse, error) {
	w := Warehouse(s)
	if err := w.Validate(); err != nil {
		return "", err
	}
	return w, nil
}

func (w Warehouse) Validate() error {
	if _, ok := warehouses[w]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("warehouse", fmt.Errorf("%q is not a known warehouse", string(w)))
	}
	return nil
}

func (w Warehouse) String() string { return string(w) }

// DisplayName returns the human name, or the raw value for unknown warehouses.
func (w Warehouse) DisplayName() string {
	if info, ok := warehouses[w]; ok {
		return info.displayName
	}
	return string(w)
}

func (w Warehouse) Address() Address {
	return warehouses[w].address
}

// Other returns the opposite warehouse of a transfer.
func (w Warehouse) Other() Warehouse {
	if w == WarehouseZielonka {
		return WarehouseBialystok
	}
	return WarehouseZielonka
}

// Direction is an inter-warehouse transfer route.
type Direction string

const (
	DirectionBialystokZielonka Direction = "bialystok_zielonka"
	DirectionZielonkaBialystok Direction = "zielonka_bialystok"
)

type directionInfo struct {
	source      Warehouse
	destination Warehouse
	costCenter  string
}

var directions = map[Direction]directionInfo{
	DirectionBialystokZielonka: {source: WarehouseBialystok, destination: WarehouseZielonka, costCenter: "549-03-01"},
	DirectionZielonkaBialystok: {source: WarehouseZielonka, destination: WarehouseBialystok, costCenter: "549-03-02"},
}

func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

func (d Direction) Validate() error {
	if _, ok := directions[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transport_direction",
			fmt.Errorf("%q is not a known direction", string(d)))
	}
	return nil
}

func (d Direction) String() string { return string(d) }

func (d Direction) Source() Warehouse      { return directions[d].source }
func (d Direction) Destination() Warehouse { return directions[d].destination }

// CostCenter returns the accounting code (MPK) booked for transfers on this route.
func (d Direction) CostCenter() string { return directions[d].costCenter }
