package ports

import (
	"context"
	"time"

	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	Add(ctx context.Context, aggregate *billing.Invoice) error

	// Get retrieves an invoice by its unique identifier.
	// Returns a NotFoundError when no such invoice exists.
	Get(ctx context.Context, id kernel.UUID) (*billing.Invoice, error)

	// GetAll retrieves all invoices, newest first.
	GetAll(ctx context.Context) ([]*billing.Invoice, error)

	// GetAllForSubject retrieves all invoices billed to the subject,
	// newest first.
	GetAllForSubject(ctx context.Context, subject billing.Subject) ([]*billing.Invoice, error)

	// GetLastEndDateForSubject returns the latest invoice end date recorded
	// for the subject, or nil when the subject has no ranged invoices yet.
	GetLastEndDateForSubject(ctx context.Context, subject billing.Subject) (*time.Time, error)

	// GetAllPendingOlderThan retrieves Pending invoices created before the
	// cutoff, oldest first.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*billing.Invoice, error)

	// SetStatusIfPending atomically resolves the invoice when it is still
	// Pending. Returns a ConflictError when another writer resolved it
	// first, so concurrent Paid/Rejected races settle with exactly one
	// winner.
	SetStatusIfPending(ctx context.Context, id kernel.UUID, status billing.InvoiceStatus, mode billing.PaymentMode) error
}
