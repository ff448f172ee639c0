package ports

import (
	"context"

	"logistics/internal/core/domain/model/access"
)

// UserRepository loads users by their email, which is the identity the
// session resolver returns.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (access.User, error)
}
