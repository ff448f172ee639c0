// Package request provides the transport request aggregate: an internal request
// for a company-operated shipment that must be approved before it becomes a
// scheduled transport.
//
// Key business rules:
//   - A request leaves pending exactly once, to approved or rejected
//   - An approved request always references the transport it produced
//   - Warehouse transfers take destination and cost center from their direction
//   - The delivery date may not lie in the past when the request is created
//   - Only the requester may edit, and only while pending
package request
