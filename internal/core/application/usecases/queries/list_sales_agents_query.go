package queries

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/guard"
)

var ErrListSalesAgentsQueryIsNotConstructed = errors.New(
	"ListSalesAgentsQuery must be created via NewListSalesAgentsQuery constructor",
)

// ListSalesAgentsQuery retrieves the sales agent catalog.
type ListSalesAgentsQuery struct {
	actor access.Actor

	guard guard.ConstructorGuard
}

// NewListSalesAgentsQuery creates a sales agent listing query.
func NewListSalesAgentsQuery(actor access.Actor) (ListSalesAgentsQuery, error) {
	q := ListSalesAgentsQuery{guard: guard.NewConstructorGuard()}

	if err := actor.Validate(); err != nil {
		return ListSalesAgentsQuery{}, err
	}

	q.actor = actor
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListSalesAgentsQuery) Validate() error {
	return q.guard.Validate(ErrListSalesAgentsQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q ListSalesAgentsQuery) Actor() access.Actor { return q.actor }

// SalesAgentView is the sales agent read model. Rate is the current default
// commission percentage, not the snapshot on past orders.
type SalesAgentView struct {
	ID     kernel.UUID
	Name   string
	Rate   float64
	UserID *kernel.UUID
}
