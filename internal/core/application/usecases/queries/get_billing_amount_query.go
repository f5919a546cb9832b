package queries

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrGetBillingAmountQueryIsNotConstructed = errors.New(
	"GetBillingAmountQuery must be created via NewGetBillingAmountQuery constructor",
)

// GetBillingAmountQuery computes the amount accrued to a billing subject
// over a date range, with the formula explanation invoice screens display.
type GetBillingAmountQuery struct {
	actor   access.Actor
	subject billing.Subject
	period  kernel.DateRange

	guard guard.ConstructorGuard
}

// NewGetBillingAmountQuery creates a billing amount query.
func NewGetBillingAmountQuery(
	actor access.Actor,
	subject billing.Subject,
	period kernel.DateRange,
) (GetBillingAmountQuery, error) {
	q := GetBillingAmountQuery{guard: guard.NewConstructorGuard()}

	if err := actor.Validate(); err != nil {
		return GetBillingAmountQuery{}, err
	}
	if err := subject.Validate(); err != nil {
		return GetBillingAmountQuery{}, err
	}
	if err := period.Validate(); err != nil {
		return GetBillingAmountQuery{}, err
	}

	q.actor = actor
	q.subject = subject
	q.period = period
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBillingAmountQuery) Validate() error {
	return q.guard.Validate(ErrGetBillingAmountQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q GetBillingAmountQuery) Actor() access.Actor { return q.actor }

// Subject returns the billing subject being computed.
func (q GetBillingAmountQuery) Subject() billing.Subject { return q.subject }

// Period returns the billed date range.
func (q GetBillingAmountQuery) Period() kernel.DateRange { return q.period }

// authorizeSubjectAccess permits billing reads for a subject: admins see
// every ledger, a partner or agent only their own. Internal company shares
// are never visible below admin.
func authorizeSubjectAccess(actor access.Actor, subject billing.Subject) error {
	if actor.CanViewGlobalBilling() {
		return nil
	}
	if isOwnSubject(actor, subject) {
		return nil
	}
	return errs.NewAuthorizationError("view billing for this subject")
}

func isOwnSubject(actor access.Actor, subject billing.Subject) bool {
	switch subject.Kind() {
	case billing.SubjectPartner:
		return actor.PartnerID() != nil && actor.PartnerID().IsEqual(subject.EntityID())
	case billing.SubjectAgent:
		return actor.AgentID() != nil && actor.AgentID().IsEqual(subject.EntityID())
	default:
		return false
	}
}
