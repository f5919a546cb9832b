package jobs

import (
	"fmt"
	"log/slog"

	"shipledger/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingInvoiceReminderJob *PendingInvoiceReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(invoiceUoWFactory commands.InvoiceUoWFactory, logger *slog.Logger) *JobManager {
	return &JobManager{
		pendingInvoiceReminderJob: NewPendingInvoiceReminderJob(invoiceUoWFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingInvoiceReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending invoice reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingInvoiceReminderJob.Stop()
}
