// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	expiry := jobs.NewQuotationExpiryJob(handler, cfg.QuotationExpirySchedule, commands.SystemClock, logger)
//	jobManager := jobs.NewJobManager(expiry)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// QuotationExpiryJob expires draft and sent quotations whose validity date has
// passed. It runs on QUOTATION_EXPIRY_SCHEDULE, hourly by default.
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. A schedule that does not
// parse makes StartAll fail.
package jobs
