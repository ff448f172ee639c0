package ports

import "context"

// Identity is what an opaque session token resolves to.
type Identity struct {
	Email string
}

// SessionResolver maps a session token to an identity. Missing and expired
// tokens resolve to nil without an error.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*Identity, error)
}
