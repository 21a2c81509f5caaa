package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"created", order.Created, false},
		{"canceled", order.Canceled, false},
		{"completed", order.Completed, false},
		{"unknown", order.Unknown, true},
		{"out of range", order.Status(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "created", order.Created.String())
	assert.Equal(t, "canceled", order.Canceled.String())
	assert.Equal(t, "completed", order.Completed.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips all valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Created, order.Canceled, order.Completed} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")
		require.Error(t, err)

		_, err = order.StatusFromString("shipped")
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("created can be canceled", func(t *testing.T) {
		newStatus, err := order.Created.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Canceled, newStatus)
	})

	t.Run("canceled cannot be canceled again", func(t *testing.T) {
		_, err := order.Canceled.Cancel()
		require.ErrorIs(t, err, order.ErrOrderAlreadyCanceled)
	})

	t.Run("completed cannot be canceled", func(t *testing.T) {
		_, err := order.Completed.Cancel()
		require.Error(t, err)
		require.NotErrorIs(t, err, order.ErrOrderAlreadyCanceled)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("created can be completed", func(t *testing.T) {
		newStatus, err := order.Created.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.Completed, newStatus)
	})

	t.Run("terminal statuses cannot be completed", func(t *testing.T) {
		_, err := order.Canceled.Complete()
		require.Error(t, err)

		_, err = order.Completed.Complete()
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Created.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
}
