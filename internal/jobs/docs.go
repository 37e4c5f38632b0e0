// Package jobs provides scheduled background tasks for the supply chain service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StoreAuditJob - Inspects every entity store on AUDIT_SCHEDULE, logs corrupt
// records and updates the supplychain_store_* gauges
//
// # Usage
//
//	jobManager := jobs.NewJobManager(logger)
//	jobManager.Add("store audit", jobs.NewStoreAuditJob(inspectHandler, m, "@every 5m", logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Corrupt records are reported through logs and gauges; the audit itself succeeds
// - Storage failures are logged at error level; the next tick runs a fresh audit
// - Failed job starts will stop any already running jobs
package jobs
