package queries

import (
	"errors"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery computes dashboard indicators over the actor's visible
// orders. The money headline is role-dependent: partners see their accrued
// courier earnings, everyone else sees profit.
type GetStatsQuery struct {
	actor  access.Actor
	period *kernel.DateRange

	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a stats query. period may be nil to cover the
// whole ledger.
func NewGetStatsQuery(actor access.Actor, period *kernel.DateRange) (GetStatsQuery, error) {
	q := GetStatsQuery{guard: guard.NewConstructorGuard()}

	if err := actor.Validate(); err != nil {
		return GetStatsQuery{}, err
	}
	if period != nil {
		if err := period.Validate(); err != nil {
			return GetStatsQuery{}, err
		}
	}

	q.actor = actor
	q.period = period
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q GetStatsQuery) Actor() access.Actor { return q.actor }

// Period returns the optional date range filter.
func (q GetStatsQuery) Period() *kernel.DateRange { return q.period }

// DailyStat is one day of the trailing activity series.
type DailyStat struct {
	Day        time.Time
	OrderCount int
	Amount     float64
}

// StatsView is the dashboard read model.
type StatsView struct {
	// OrderCount is the number of visible orders in the period.
	OrderCount int

	// ProfitOrEarnings is profit for internal roles and accrued courier
	// earnings for partner logins.
	ProfitOrEarnings float64

	// SalesTotal is revenue over the period; returned orders contribute zero.
	SalesTotal float64

	// TodayCount is the number of visible orders dated today.
	TodayCount int

	// ActiveCount is the number of visible orders still in flight,
	// regardless of the period filter.
	ActiveCount int

	// DailySeries covers the trailing seven days, oldest first.
	DailySeries []DailyStat
}
