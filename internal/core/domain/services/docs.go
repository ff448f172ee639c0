// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - TransportPlanner: derives the transport to schedule from an approved request
//   - ResponsePropagator: copies a recorded carrier response onto connected orders
package services
