package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should trim and keep all parts", func(t *testing.T) {
		a, err := kernel.NewAddress("  Warszawa ", "00-001", " ul. Prosta 2 ")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "Warszawa", a.City())
		assert.Equal(t, "00-001", a.PostalCode())
		assert.Equal(t, "ul. Prosta 2", a.Street())
		assert.Equal(t, "ul. Prosta 2, 00-001 Warszawa", a.String())
	})

	t.Run("should accept a bare city", func(t *testing.T) {
		a, err := kernel.NewAddress("Gdańsk", "", "")

		require.NoError(t, err)
		assert.Equal(t, "Gdańsk", a.String())
	})

	t.Run("should require city", func(t *testing.T) {
		_, err := kernel.NewAddress(" ", "00-001", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should reject malformed postal code", func(t *testing.T) {
		_, err := kernel.NewAddress("Warszawa", "00001", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "postal_code")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var a kernel.Address

		assert.Equal(t, kernel.ErrAddressIsNotConstructed, a.Validate())
	})
}
