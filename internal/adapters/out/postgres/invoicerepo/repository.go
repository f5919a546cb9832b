package invoicerepo

import (
	"context"
	"errors"
	"time"

	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements ports.InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates modified
// within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice to the database.
func (r *GormInvoiceRepository) Add(ctx context.Context, inv *billing.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}

	dto := fromDomain(inv)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("invoiceId", inv.ID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(inv.ID(), inv)
	return nil
}

// Get retrieves an invoice by ID.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*billing.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("invoiceId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every invoice, newest first.
func (r *GormInvoiceRepository) GetAll(ctx context.Context) ([]*billing.Invoice, error) {
	var dtos []InvoiceDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return r.toDomainAll(dtos)
}

// GetAllForSubject retrieves a subject's invoices, newest first.
func (r *GormInvoiceRepository) GetAllForSubject(
	ctx context.Context,
	subject billing.Subject,
) ([]*billing.Invoice, error) {
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	var dtos []InvoiceDTO
	err := subjectDB(r.db.WithContext(ctx), subject).Order("created_at DESC").Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainAll(dtos)
}

// GetLastEndDateForSubject returns the latest invoiced end date for the
// subject, or nil when no ranged invoice exists yet.
func (r *GormInvoiceRepository) GetLastEndDateForSubject(
	ctx context.Context,
	subject billing.Subject,
) (*time.Time, error) {
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	var lastEnd *time.Time
	err := subjectDB(r.db.WithContext(ctx).Model(&InvoiceDTO{}), subject).
		Select("MAX(end_date)").
		Scan(&lastEnd).Error
	if err != nil {
		return nil, err
	}
	return lastEnd, nil
}

// GetAllPendingOlderThan retrieves Pending invoices created before cutoff,
// oldest first. Feeds the reminder job.
func (r *GormInvoiceRepository) GetAllPendingOlderThan(
	ctx context.Context,
	cutoff time.Time,
) ([]*billing.Invoice, error) {
	var dtos []InvoiceDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", billing.InvoiceStatusPending.String(), cutoff).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainAll(dtos)
}

// SetStatusIfPending resolves an invoice with a compare-and-set on the
// Pending status, so two concurrent resolutions cannot both win. The loser
// gets a ConflictError naming the state the winner left behind.
func (r *GormInvoiceRepository) SetStatusIfPending(
	ctx context.Context,
	id kernel.UUID,
	status billing.InvoiceStatus,
	mode billing.PaymentMode,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !status.IsTerminal() {
		return errs.NewValidationError("invoice resolution status must be terminal")
	}

	values := map[string]any{"status": status.String()}
	if status == billing.InvoiceStatusPaid {
		values["payment_mode"] = string(mode)
	}

	result := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), billing.InvoiceStatusPending.String()).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	return errs.NewConflictError("invoice already resolved as", current.Status().String())
}

func (r *GormInvoiceRepository) toDomainAll(dtos []InvoiceDTO) ([]*billing.Invoice, error) {
	invoices := make([]*billing.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func subjectDB(tx *gorm.DB, subject billing.Subject) *gorm.DB {
	if subject.Kind() == billing.SubjectInternal {
		return tx.Where("subject_kind = ? AND recipient = ?",
			billing.SubjectInternal.String(), string(subject.Recipient()))
	}
	return tx.Where("subject_kind = ? AND entity_id = ?",
		subject.Kind().String(), subject.EntityID().Bytes())
}
