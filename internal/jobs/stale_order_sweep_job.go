package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"orderdesk/internal/core/application/usecases/commands"
)

// DefaultSweepSchedule runs the sweep every five minutes.
const DefaultSweepSchedule = "0 */5 * * * *"

// staleOrderSweeper is satisfied by commands.SweepStaleOrdersCommandHandler.
type staleOrderSweeper interface {
	Handle(ctx context.Context, cmd commands.SweepStaleOrdersCommand) (int, error)
}

// StaleOrderSweepJob marks InProcess orders that exceeded the staleness
// threshold as Delayed, so they surface even when nobody opens the dashboard.
type StaleOrderSweepJob struct {
	handler  staleOrderSweeper
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrderSweepJob creates the job. schedule is a six-field cron
// expression (with seconds); empty means DefaultSweepSchedule.
func NewStaleOrderSweepJob(handler staleOrderSweeper, schedule string, logger *slog.Logger) *StaleOrderSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &StaleOrderSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_order_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *StaleOrderSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *StaleOrderSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale order sweep job stopped")
}

func (j *StaleOrderSweepJob) run() {
	ctx := context.Background()

	delayed, err := j.handler.Handle(ctx, commands.NewSweepStaleOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		return
	}
	if delayed > 0 {
		j.logger.InfoContext(ctx, "Stale orders delayed", "count", delayed)
	}
}
