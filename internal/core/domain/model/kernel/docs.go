// Package kernel provides the value objects shared by the forwarding, request and
// transport aggregates.
//
// The package includes:
//   - Address: a validated postal address (city, postal code, street)
//   - Warehouse: the two company warehouses with their display names and addresses
//   - Direction: an inter-warehouse transfer direction with its cost-center code
//
// Warehouse and direction tables are fixed; they are part of the domain, not of
// the configuration.
package kernel
