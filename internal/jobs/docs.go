// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StaleOrderSweepJob periodically marks InProcess orders whose processing
// started longer ago than the workflow's staleness threshold as Delayed.
// Dashboard reads run the same sweep, so the job only matters when nobody is
// looking at the dashboard.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(sweepHandler, "0 */5 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick.
package jobs
