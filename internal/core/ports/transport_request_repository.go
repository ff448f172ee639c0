package ports

import (
	"context"

	"logistics/internal/core/domain/model/request"
)

// TransportRequestRepository defines the persistence contract for transport requests.
type TransportRequestRepository interface {
	// Add persists a new request, assigns the generated id to it and returns the id.
	Add(ctx context.Context, aggregate *request.Request) (int64, error)

	// Update writes every column except the requester and creation time.
	Update(ctx context.Context, aggregate *request.Request) error

	Get(ctx context.Context, id int64) (*request.Request, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*request.Request, error)

	// ResetApproval returns a request that has no transport linked to pending
	// and clears its approval fields. It is the compensation of a failed approval.
	ResetApproval(ctx context.Context, id int64) error
}
