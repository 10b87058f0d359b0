// Package jobs provides scheduled background tasks for the shop system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs every minute to cancel pending orders
// older than the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderService, clock, staleOrderTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The cancellation job goes through the CancelOrder use case, so the status
// state machine keeps its guarantees. Orders that were confirmed or deleted
// between listing and cancellation are skipped silently; everything else is
// logged and the job continues with the next order.
package jobs
