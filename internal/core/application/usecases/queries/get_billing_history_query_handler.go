package queries

import (
	"context"
	"database/sql"
	"time"

	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const invoiceColumns = `invoices.id, invoices.subject_kind, invoices.recipient, invoices.entity_id,
	invoices.amount, invoices.start_date, invoices.end_date, invoices.month,
	invoices.status, invoices.payment_mode, invoices.created_at`

// GetBillingHistoryQueryHandler retrieves a subject's invoices and computes
// where the next billing range should start.
type GetBillingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetBillingHistoryQueryHandler creates a handler for billing history queries.
func NewGetBillingHistoryQueryHandler(db *gorm.DB) GetBillingHistoryQueryHandler {
	return GetBillingHistoryQueryHandler{db: db}
}

// Handle executes the query.
func (h GetBillingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetBillingHistoryQuery,
) (BillingHistoryView, error) {
	if err := query.Validate(); err != nil {
		return BillingHistoryView{}, err
	}
	if err := authorizeSubjectAccess(query.Actor(), query.Subject()); err != nil {
		return BillingHistoryView{}, err
	}

	tx := applySubject(h.db.WithContext(ctx).Table("invoices"), query.Subject()).
		Select(invoiceColumns).
		Order("invoices.end_date DESC NULLS LAST, invoices.created_at DESC")

	rows, err := tx.Rows()
	if err != nil {
		return BillingHistoryView{}, err
	}
	defer rows.Close()

	invoices, err := scanInvoiceViews(rows)
	if err != nil {
		return BillingHistoryView{}, err
	}

	suggested, err := suggestedStartForSubject(ctx, h.db, query.Subject())
	if err != nil {
		return BillingHistoryView{}, err
	}

	return BillingHistoryView{Invoices: invoices, SuggestedStart: suggested}, nil
}

// suggestedStartForSubject is the day after the subject's last invoiced end
// date. With no ranged invoice yet, it falls back to the subject's earliest
// order date, then to the Unix epoch so a first run covers everything.
func suggestedStartForSubject(
	ctx context.Context,
	db *gorm.DB,
	subject billing.Subject,
) (time.Time, error) {
	var lastEnd sql.NullTime
	err := applySubject(db.WithContext(ctx).Table("invoices"), subject).
		Select("MAX(invoices.end_date)").
		Scan(&lastEnd).Error
	if err != nil {
		return time.Time{}, err
	}
	if lastEnd.Valid {
		return kernel.StartOfDay(lastEnd.Time.AddDate(0, 0, 1)), nil
	}

	tx := db.WithContext(ctx).Table("orders").Select("MIN(orders.date)")
	switch subject.Kind() {
	case billing.SubjectPartner:
		tx = tx.Where("orders.partner_id = ?", subject.EntityID().Bytes())
	case billing.SubjectAgent:
		tx = tx.Where("orders.agent_id = ?", subject.EntityID().Bytes())
	}

	var earliest sql.NullTime
	if err = tx.Scan(&earliest).Error; err != nil {
		return time.Time{}, err
	}
	if earliest.Valid {
		return kernel.StartOfDay(earliest.Time), nil
	}
	return time.Unix(0, 0).UTC(), nil
}

// applySubject narrows an invoices query to one billing subject.
func applySubject(tx *gorm.DB, subject billing.Subject) *gorm.DB {
	if subject.Kind() == billing.SubjectInternal {
		return tx.Where("invoices.subject_kind = ? AND invoices.recipient = ?",
			billing.SubjectInternal.String(), string(subject.Recipient()))
	}
	return tx.Where("invoices.subject_kind = ? AND invoices.entity_id = ?",
		subject.Kind().String(), subject.EntityID().Bytes())
}

func scanInvoiceViews(rows *sql.Rows) ([]InvoiceView, error) {
	views := make([]InvoiceView, 0)

	for rows.Next() {
		view, err := scanInvoiceView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

func scanInvoiceView(rows *sql.Rows) (InvoiceView, error) {
	var view InvoiceView
	var id uuid.UUID
	var entityID uuid.NullUUID
	var recipient, paymentMode sql.NullString
	var startDate, endDate sql.NullTime

	err := rows.Scan(&id, &view.SubjectKind, &recipient, &entityID,
		&view.Amount, &startDate, &endDate, &view.Month,
		&view.Status, &paymentMode, &view.CreatedAt)
	if err != nil {
		return InvoiceView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return InvoiceView{}, err
	}
	if view.EntityID, err = optionalUUID(entityID); err != nil {
		return InvoiceView{}, err
	}
	view.Recipient = recipient.String
	view.PaymentMode = paymentMode.String
	if startDate.Valid {
		view.StartDate = &startDate.Time
	}
	if endDate.Valid {
		view.EndDate = &endDate.Time
	}
	return view, nil
}
