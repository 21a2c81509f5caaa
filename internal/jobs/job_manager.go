package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderCompletionJob *OrderCompletionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	completeStaleOrdersHandler commands.CompleteStaleOrdersCommandHandler,
	completionSchedule string,
	completionMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderCompletionJob: NewOrderCompletionJob(
			completeStaleOrdersHandler, completionSchedule, completionMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start order completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderCompletionJob.Stop()
}
