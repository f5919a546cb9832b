// Package jobs provides scheduled background tasks for the order ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the ledger needs.
//
// # Available Jobs
//
// 1. PendingInvoiceReminderJob - Runs every morning at 09:00 to log invoices
// that have sat Pending for more than three days
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(invoiceUoWFactory, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reminder job logs failures and keeps its schedule; a broken morning
// run does not cancel the next one.
package jobs
