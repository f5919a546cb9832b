package queries

import (
	"errors"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/services"
	"shipledger/internal/pkg/guard"
)

var ErrGetPersonalBillingStatsQueryIsNotConstructed = errors.New(
	"GetPersonalBillingStatsQuery must be created via NewGetPersonalBillingStatsQuery constructor",
)

// GetPersonalBillingStatsQuery computes what a partner or agent login has
// accrued since its last invoice, so the self-service filing screen can
// prefill the amount.
type GetPersonalBillingStatsQuery struct {
	actor access.Actor

	guard guard.ConstructorGuard
}

// NewGetPersonalBillingStatsQuery creates a personal billing stats query.
func NewGetPersonalBillingStatsQuery(actor access.Actor) (GetPersonalBillingStatsQuery, error) {
	q := GetPersonalBillingStatsQuery{guard: guard.NewConstructorGuard()}

	if err := actor.Validate(); err != nil {
		return GetPersonalBillingStatsQuery{}, err
	}

	q.actor = actor
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPersonalBillingStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPersonalBillingStatsQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q GetPersonalBillingStatsQuery) Actor() access.Actor { return q.actor }

// PersonalBillingStatsView is the accrual read model for self-service
// billing. Since marks the start of the unbilled period; Month covers the
// current calendar month to date; LifetimeDue is the subject's all-time
// earnings minus everything already paid out, so a rejected or forgotten
// invoice keeps showing up as owed.
type PersonalBillingStatsView struct {
	Since       time.Time
	Breakdown   services.BillingBreakdown
	Month       services.BillingBreakdown
	LifetimeDue float64
}
