package commands

import (
	"context"
	"time"
)

// CompleteStaleOrdersCommandHandler completes every order left in created
// status beyond the configured age. All completions commit in one
// transaction; completion has no stock side effects, so the batch touches
// only order rows.
type CompleteStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteStaleOrdersCommandHandler creates a handler for the completion sweep.
func NewCompleteStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CompleteStaleOrdersCommandHandler {
	return CompleteStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many orders were completed.
func (h *CompleteStaleOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteStaleOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().Add(-cmd.MaxAge())

	stale, err := orderRepo.GetAllCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, existing := range stale {
		if err = existing.Complete(); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, existing); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
