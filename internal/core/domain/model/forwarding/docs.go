// Package forwarding provides the freight-forwarding order ("spedycja") aggregate:
// an outbound shipment placed with an external carrier.
//
// The package includes:
//   - Order: the aggregate root with its details and optional carrier response
//   - OrderNumber: the NNNN/MM/YYYY number issued per calendar month
//   - Response: carrier assignment details (driver, vehicle, price, distance)
//   - Status and PickupLocation enums
//
// Key business rules:
//   - An order number is unique within its month and year and grows by one from
//     the highest number already issued in that bucket
//   - Recording a response never changes the order status
//   - A propagated response is never written over an existing non-empty response
package forwarding
