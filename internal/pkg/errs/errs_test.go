package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("numeric ids are printed plainly", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("requestId", int64(456))
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("transport_direction")

		assert.Equal(t, "transport_direction", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: transport_direction", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown warehouse")
		err := errs.NewValueIsInvalidErrorWithCause("sourceWarehouse", cause)

		assert.Equal(t, "value is invalid: sourceWarehouse (cause: unknown warehouse)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("distanceKm", -5, 0, 10000)

		assert.Equal(t, -5, err.Value)
		assert.Equal(t, "value is invalid: -5 is distanceKm, min value is 0, max value is 10000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("delivery_date")
	assert.Equal(t, "value is required: delivery_date", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("delivery_date", errors.New("empty"))
	assert.Equal(t, "value is required: delivery_date (cause: empty)", withCause.Error())
}

func TestAccessErrors(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		err := errs.NewUnauthenticatedError()
		assert.Equal(t, "unauthenticated", err.Error())
		require.ErrorIs(t, err, errs.ErrUnauthenticated)

		withCause := errs.NewUnauthenticatedErrorWithCause(errors.New("session expired"))
		assert.Equal(t, "unauthenticated (cause: session expired)", withCause.Error())
	})

	t.Run("forbidden", func(t *testing.T) {
		err := errs.NewForbiddenError("jan@example.com", "approve transport requests")
		assert.Equal(t, "forbidden: jan@example.com may not approve transport requests", err.Error())
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("transportRequest", int64(7), errors.New("status is approved"))
	assert.Equal(t, "conflict: transportRequest 7 (cause: status is approved)", err.Error())
	require.ErrorIs(t, err, errs.ErrConflict)

	noCause := errs.NewConflictError("orderNumber", "0001/01/2025", nil)
	assert.Equal(t, "conflict: orderNumber 0001/01/2025", noCause.Error())
}

func TestPartialFailureError(t *testing.T) {
	err := errs.NewPartialFailureError("approve transport request 7",
		errs.NewConflictError("transport", int64(3), errors.New("duplicate")))

	assert.Equal(t, "approve transport request 7: conflict: transport 3 (cause: duplicate)", err.Error())
	require.ErrorIs(t, err, errs.ErrPartialFailure)
	assert.NotErrorIs(t, err, errs.ErrConflict)
	assert.False(t, errs.IsValidation(errs.NewPartialFailureError("x", errs.NewValueIsInvalidError("a"))))
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "unauthenticated", errs.ErrUnauthenticated.Error())
	assert.Equal(t, "forbidden", errs.ErrForbidden.Error())
	assert.Equal(t, "conflict", errs.ErrConflict.Error())
	assert.Equal(t, "partial failure", errs.ErrPartialFailure.Error())
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"required", errs.NewValueIsRequiredError("a"), true},
		{"invalid", errs.NewValueIsInvalidError("a"), true},
		{"out of range", errs.NewValueIsOutOfRangeError("a", 1, 2, 3), true},
		{"joined", errors.Join(errs.NewValueIsRequiredError("a"), errs.NewValueIsRequiredError("b")), true},
		{"wrapped", fmt.Errorf("create: %w", errs.NewValueIsInvalidError("a")), true},
		{"not found", errs.NewObjectNotFoundError("a", 1), false},
		{"conflict", errs.NewConflictError("a", 1, nil), false},
		{"plain", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.IsValidation(tt.err))
		})
	}
}
