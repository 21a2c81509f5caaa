package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError_Message(t *testing.T) {
	tests := []struct {
		name string
		id   any
		want string
	}{
		{name: "numeric_id", id: uint64(7), want: "object not found: 7"},
		{name: "string_id", id: "SKU-42", want: "object not found: SKU-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errs.NewObjectNotFoundError("inventory", tt.id)

			assert.Equal(t, tt.want, err.Error())
			assert.Equal(t, "inventory", err.ParamName)
			assert.Equal(t, tt.id, err.ID)
		})
	}
}

func TestObjectNotFoundError_WithCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewObjectNotFoundErrorWithCause("order", uint64(12), cause)

	assert.Equal(t, cause, err.Cause)
	assert.Equal(t,
		"object not found: param is: order, ID is: 12 (cause: connection reset)",
		err.Error())
}

func TestValueErrors_Messages(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("email")
		assert.Equal(t, "value is required: email", err.Error())

		withCause := errs.NewValueIsRequiredErrorWithCause("email", errors.New("empty body"))
		assert.Equal(t, "value is required: email (cause: empty body)", withCause.Error())
	})

	t.Run("invalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")
		assert.Equal(t, "value is invalid: email", err.Error())

		withCause := errs.NewValueIsInvalidErrorWithCause("email", errors.New("missing @"))
		assert.Equal(t, "value is invalid: email (cause: missing @)", withCause.Error())
	})

	t.Run("out_of_range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -3, 1, 1000)

		assert.Equal(t, -3, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		assert.Equal(t,
			"value is invalid: -3 is quantity, min value is 1, max value is 1000",
			err.Error())
	})

	t.Run("out_of_range_sanitizes_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "multi\nline", 1, 255)
		assert.NotContains(t, err.Error(), "\n")
	})
}

// Every error type must unwrap to its sentinel so callers can map them
// with errors.Is instead of matching concrete types.
func TestErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "object_not_found",
			err:      errs.NewObjectNotFoundError("inventory", uint64(7)),
			sentinel: errs.ErrObjectNotFound,
		},
		{
			name:     "value_is_required",
			err:      errs.NewValueIsRequiredError("email"),
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name:     "value_is_invalid",
			err:      errs.NewValueIsInvalidError("status"),
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "value_is_out_of_range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000),
			sentinel: errs.ErrValueIsOutOfRange,
		},
		{
			name:     "with_cause_still_unwraps_to_sentinel",
			err:      errs.NewObjectNotFoundErrorWithCause("order", uint64(3), errors.New("timeout")),
			sentinel: errs.ErrObjectNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
