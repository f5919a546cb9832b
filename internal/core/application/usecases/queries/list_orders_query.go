// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases; every query
// carries the acting identity so row visibility is resolved here, while
// field-level projection stays a presentation concern.
package queries

import (
	"errors"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the orders visible to an actor, optionally
// narrowed by a free-text search and a date range.
//
// The search is whitespace-tokenized: every token must match at least one
// of tracking code, customer name, phone, slip number, address, pincode,
// status, a line-item name, or a linked agent/partner/creator name.
type ListOrdersQuery struct {
	actor  access.Actor
	search string
	period *kernel.DateRange

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. period may be nil for
// an unbounded listing.
func NewListOrdersQuery(actor access.Actor, search string, period *kernel.DateRange) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if period != nil {
		if err := period.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	q.actor = actor
	q.search = search
	q.period = period
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q ListOrdersQuery) Actor() access.Actor { return q.actor }

// Search returns the raw search input.
func (q ListOrdersQuery) Search() string { return q.search }

// Period returns the optional date range filter.
func (q ListOrdersQuery) Period() *kernel.DateRange { return q.period }

// LineItemView is a line item in the order read model.
type LineItemView struct {
	Name  string
	Cost  float64
	Price float64
}

// OrderView is the order read model returned to the presentation layer.
// The actor's FieldSet is applied there as a projection; the read side
// always loads full rows inside the resolved scope.
type OrderView struct {
	ID                 kernel.UUID
	TrackingID         string
	SlipNo             string
	Date               time.Time
	Customer           string
	Phone              string
	Address            string
	Pincode            string
	LineItems          []LineItemView
	CourierPaidExtra   float64
	CourierCostExpense float64
	PackingCostExpense float64
	AgentID            *kernel.UUID
	AgentName          string
	PartnerID          *kernel.UUID
	PartnerName        string
	EnteredByID        kernel.UUID
	EnteredBy          string
	Status             string
	TotalPaid          float64
	Profit             float64
	CommissionPct      float64
	CommissionAmount   float64
	CreatedAt          time.Time
}
