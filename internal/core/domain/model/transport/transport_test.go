package transport_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transport"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransport(t *testing.T) {
	t.Run("should create an active transport with default loading level", func(t *testing.T) {
		tr, err := transport.NewTransport(transport.Plan{
			Destination:     kernel.WarehouseZielonka.Address(),
			DeliveryDate:    time.Now(),
			SourceWarehouse: kernel.WarehouseBialystok,
			RequestID:       3,
		})

		require.NoError(t, err)
		require.NoError(t, tr.Validate())
		assert.Equal(t, transport.StatusActive, tr.Status())
		assert.Equal(t, "100%", tr.Plan().LoadingLevel)
		assert.Equal(t, int64(3), tr.Plan().RequestID)
	})

	t.Run("should report missing destination, date and warehouse", func(t *testing.T) {
		_, err := transport.NewTransport(transport.Plan{DistanceKm: -1})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "destination")
		assert.Contains(t, err.Error(), "delivery_date")
		assert.Contains(t, err.Error(), "warehouse")
		assert.Contains(t, err.Error(), "distance")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var tr *transport.Transport

		assert.Equal(t, transport.ErrTransportIsNotConstructed, tr.Validate())
	})
}
