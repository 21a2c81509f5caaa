package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/guard"
)

var (
	ErrCompleteStaleOrdersCommandIsNotConstructed = errors.New(
		"CompleteStaleOrdersCommand must be created via NewCompleteStaleOrdersCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// CompleteStaleOrdersCommand requests completion of every order that has
// stayed in created status longer than the given age. It is the external
// fulfillment trigger for the order state machine, issued by the
// completion sweep job.
type CompleteStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCompleteStaleOrdersCommand creates a sweep command.
// The max age must be positive.
func NewCompleteStaleOrdersCommand(maxAge time.Duration) (CompleteStaleOrdersCommand, error) {
	cmd := CompleteStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaxAge(maxAge); err != nil {
		return CompleteStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long an order may stay in created status before the
// sweep completes it.
func (c CompleteStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *CompleteStaleOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return ErrMaxAgeIsInvalid
	}

	c.maxAge = maxAge
	return nil
}
