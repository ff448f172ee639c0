// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, the session resolver and the notifier.
package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/forwarding"
)

// ForwardingOrderRepository defines the persistence contract for forwarding orders.
type ForwardingOrderRepository interface {
	// Add persists a new order, assigns the generated id to it and returns the id.
	// A duplicate order number fails with errs.ErrConflict.
	Add(ctx context.Context, aggregate *forwarding.Order) (int64, error)

	// Update persists the response, distance and status of an existing order.
	Update(ctx context.Context, aggregate *forwarding.Order) error

	// Get retrieves an order. Missing orders fail with errs.ErrObjectNotFound.
	Get(ctx context.Context, id int64) (*forwarding.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*forwarding.Order, error)

	// Delete removes an order. Zero affected rows fail with errs.ErrObjectNotFound.
	Delete(ctx context.Context, id int64) error

	// LockNumbering serializes number issuance for the month bucket of at until
	// the transaction ends.
	LockNumbering(ctx context.Context, at time.Time) error

	// NumbersCreatedBetween returns the order numbers of rows created in [from, to).
	NumbersCreatedBetween(ctx context.Context, from, to time.Time) ([]string, error)
}
