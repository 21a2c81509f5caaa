package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderCompletionJob sweeps orders that stayed in created status past the
// configured age and marks them completed.
type OrderCompletionJob struct {
	handler  commands.CompleteStaleOrdersCommandHandler
	schedule string
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderCompletionJob creates a job that completes stale orders.
// The schedule is a standard cron expression; maxAge is how long an order
// may stay in created status before the sweep picks it up.
func NewOrderCompletionJob(
	handler commands.CompleteStaleOrdersCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *OrderCompletionJob {
	return &OrderCompletionJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		cron:     cron.New(),
		logger:   logger.With("component", "order_completion_job"),
	}
}

// Start begins the completion sweep on its schedule.
func (j *OrderCompletionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCompleteStaleOrdersCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order completion job misconfigured", "error", cmdErr)
			return
		}

		completed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order completion job failed", "error", handleErr)
			return
		}

		if completed > 0 {
			j.logger.InfoContext(ctx, "Completed stale orders", "count", completed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order completion job started",
		"schedule", j.schedule, "max_age", j.maxAge.String())
	return nil
}

// Stop stops the completion sweep.
func (j *OrderCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order completion job stopped")
}
