package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the scheduled jobs together.
type JobManager struct {
	staleOrderSweepJob *StaleOrderSweepJob
}

func NewJobManager(sweepHandler staleOrderSweeper, sweepSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		staleOrderSweepJob: NewStaleOrderSweepJob(sweepHandler, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderSweepJob.Stop()
}
