package ports

import (
	"context"

	"logistics/internal/core/domain/model/transport"
)

// TransportRepository persists scheduled transports.
type TransportRepository interface {
	Add(ctx context.Context, aggregate *transport.Transport) (int64, error)
}
