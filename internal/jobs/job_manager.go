// Package jobs provides the scheduled background tasks of the service,
// implemented on github.com/robfig/cron/v3 and managed through JobManager.
package jobs

import (
	"fmt"
	"log/slog"

	"waterdrop/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	autoAssignmentJob *AutoAssignmentJob
}

// NewJobManager creates a job manager wired to the given command handlers.
func NewJobManager(
	assignNextOrderHandler commands.AssignNextOrderCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autoAssignmentJob: NewAutoAssignmentJob(assignNextOrderHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.autoAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto-assignment job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoAssignmentJob.Stop()
}
