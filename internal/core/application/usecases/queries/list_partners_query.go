package queries

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/guard"
)

var ErrListPartnersQueryIsNotConstructed = errors.New(
	"ListPartnersQuery must be created via NewListPartnersQuery constructor",
)

// ListPartnersQuery retrieves the shipping partner catalog. Staff need it to
// link orders, so any order-mutating role may list it.
type ListPartnersQuery struct {
	actor access.Actor

	guard guard.ConstructorGuard
}

// NewListPartnersQuery creates a partner listing query.
func NewListPartnersQuery(actor access.Actor) (ListPartnersQuery, error) {
	q := ListPartnersQuery{guard: guard.NewConstructorGuard()}

	if err := actor.Validate(); err != nil {
		return ListPartnersQuery{}, err
	}

	q.actor = actor
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPartnersQuery) Validate() error {
	return q.guard.Validate(ErrListPartnersQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q ListPartnersQuery) Actor() access.Actor { return q.actor }

// PartnerView is the shipping partner read model.
type PartnerView struct {
	ID     kernel.UUID
	Name   string
	Rate   float64
	UserID *kernel.UUID
}
