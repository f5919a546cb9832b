package queries

import (
	"errors"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/guard"
)

var ErrGetBillingHistoryQueryIsNotConstructed = errors.New(
	"GetBillingHistoryQuery must be created via NewGetBillingHistoryQuery constructor",
)

// GetBillingHistoryQuery retrieves a subject's invoices, newest first,
// together with the suggested start date for the next billing run.
type GetBillingHistoryQuery struct {
	actor   access.Actor
	subject billing.Subject

	guard guard.ConstructorGuard
}

// NewGetBillingHistoryQuery creates a billing history query.
func NewGetBillingHistoryQuery(actor access.Actor, subject billing.Subject) (GetBillingHistoryQuery, error) {
	q := GetBillingHistoryQuery{guard: guard.NewConstructorGuard()}

	if err := actor.Validate(); err != nil {
		return GetBillingHistoryQuery{}, err
	}
	if err := subject.Validate(); err != nil {
		return GetBillingHistoryQuery{}, err
	}

	q.actor = actor
	q.subject = subject
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBillingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetBillingHistoryQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q GetBillingHistoryQuery) Actor() access.Actor { return q.actor }

// Subject returns the billing subject.
func (q GetBillingHistoryQuery) Subject() billing.Subject { return q.subject }

// InvoiceView is the invoice read model.
type InvoiceView struct {
	ID          kernel.UUID
	SubjectKind string
	Recipient   string
	EntityID    *kernel.UUID
	Amount      float64
	StartDate   *time.Time
	EndDate     *time.Time
	Month       string
	Status      string
	PaymentMode string
	CreatedAt   time.Time
}

// BillingHistoryView pairs a subject's invoices with the next range start:
// the day after the last invoiced end date, falling back to the earliest
// order date, then to the Unix epoch for an empty ledger. Consecutive runs
// therefore neither skip nor double-bill a day.
type BillingHistoryView struct {
	Invoices       []InvoiceView
	SuggestedStart time.Time
}
