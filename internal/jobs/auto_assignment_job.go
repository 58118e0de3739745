package jobs

import (
	"context"
	"errors"
	"log/slog"

	"waterdrop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoAssignmentJob periodically matches the oldest waiting order with an
// available delivery partner. Runs every five seconds so manually assigned or
// accepted orders usually win the race, and auto-assignment picks up the rest.
type AutoAssignmentJob struct {
	handler commands.AssignNextOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAutoAssignmentJob creates the auto-assignment job.
func NewAutoAssignmentJob(handler commands.AssignNextOrderCommandHandler, logger *slog.Logger) *AutoAssignmentJob {
	return &AutoAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "auto_assignment_job"),
	}
}

// Start schedules the assignment pass. An empty queue or a fully busy fleet
// is an idle tick, not a failure.
func (j *AutoAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignNextOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			if errors.Is(err, commands.ErrNoPendingOrders) || errors.Is(err, commands.ErrNoAvailablePartners) {
				j.logger.DebugContext(ctx, "Auto-assignment idle", "reason", err)
				return
			}
			j.logger.ErrorContext(ctx, "Auto-assignment pass failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-assignment job started (running every 5 seconds)")
	return nil
}

// Stop stops the job.
func (j *AutoAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-assignment job stopped")
}
