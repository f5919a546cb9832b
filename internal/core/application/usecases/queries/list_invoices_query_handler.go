package queries

import (
	"context"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListInvoicesQueryHandler retrieves invoice read models from the database.
type ListInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewListInvoicesQueryHandler creates a handler for invoice listing queries.
func NewListInvoicesQueryHandler(db *gorm.DB) ListInvoicesQueryHandler {
	return ListInvoicesQueryHandler{db: db}
}

// Handle executes the query. Results are newest-first.
func (h ListInvoicesQueryHandler) Handle(ctx context.Context, query ListInvoicesQuery) ([]InvoiceView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("invoices").
		Select(invoiceColumns).
		Order("invoices.created_at DESC")

	if !query.Actor().CanViewGlobalBilling() {
		subject, err := actorOwnSubject(query.Actor())
		if err != nil {
			return nil, err
		}
		tx = applySubject(tx, subject)
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoiceViews(rows)
}

// actorOwnSubject maps a login to the billing subject it is billed under.
// Logins without a partner or agent linkage have no billing ledger.
func actorOwnSubject(actor access.Actor) (billing.Subject, error) {
	switch {
	case actor.Role() == access.RolePartner && actor.PartnerID() != nil:
		return billing.SubjectForPartner(*actor.PartnerID())
	case actor.AgentID() != nil:
		return billing.SubjectForAgent(*actor.AgentID())
	default:
		return billing.Subject{}, errs.NewAuthorizationError("view own billing")
	}
}
