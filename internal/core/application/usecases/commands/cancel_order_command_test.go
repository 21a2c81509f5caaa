package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_Success(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(7)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, uint64(7), cmd.OrderID())
}

func TestNewCancelOrderCommand_ZeroID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(0)
	require.Error(t, err)
}

func TestCancelOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CancelOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}
