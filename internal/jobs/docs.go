// Package jobs provides scheduled background tasks for the delivery tracking
// service, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueDeliveryJob - Runs every minute and logs active orders whose
// status has not changed within the configured threshold, so operations can
// chase deliveries that look stuck.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(stalledOrdersHandler, threshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
