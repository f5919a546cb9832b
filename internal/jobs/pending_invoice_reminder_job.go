package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipledger/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// staleInvoiceAge is how long an invoice may sit Pending before the morning
// reminder starts listing it.
const staleInvoiceAge = 3 * 24 * time.Hour

// PendingInvoiceReminderJob logs a morning digest of invoices that have been
// awaiting resolution for several days, so stale paperwork surfaces without
// anyone polling the ledger.
type PendingInvoiceReminderJob struct {
	uowFactory commands.InvoiceUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPendingInvoiceReminderJob creates the daily stale-invoice reminder.
func NewPendingInvoiceReminderJob(uowFactory commands.InvoiceUoWFactory, logger *slog.Logger) *PendingInvoiceReminderJob {
	return &PendingInvoiceReminderJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "pending_invoice_reminder_job"),
	}
}

// Start schedules the reminder to run every morning at 09:00.
func (j *PendingInvoiceReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 9 * * *", func() {
		ctx := context.Background()
		if err := j.remind(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Pending invoice reminder failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending invoice reminder started (running daily at 09:00)")
	return nil
}

// Stop stops the reminder job.
func (j *PendingInvoiceReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending invoice reminder stopped")
}

func (j *PendingInvoiceReminderJob) remind(ctx context.Context) error {
	uow := j.uowFactory.Create()

	cutoff := time.Now().Add(-staleInvoiceAge)
	stale, err := uow.InvoiceRepository().GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	ids := make([]string, 0, len(stale))
	for _, inv := range stale {
		ids = append(ids, inv.ID().String())
	}
	j.logger.InfoContext(ctx, "Invoices awaiting resolution",
		"count", len(stale), "olderThan", cutoff.Format(time.RFC3339), "ids", ids)
	return nil
}
