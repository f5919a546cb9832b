package queries

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/pkg/guard"
)

var ErrListInvoicesQueryIsNotConstructed = errors.New(
	"ListInvoicesQuery must be created via NewListInvoicesQuery constructor",
)

// ListInvoicesQuery retrieves invoices for the actor: admins see every
// invoice, a partner or agent login only those billed to them.
type ListInvoicesQuery struct {
	actor access.Actor

	guard guard.ConstructorGuard
}

// NewListInvoicesQuery creates an invoice listing query.
func NewListInvoicesQuery(actor access.Actor) (ListInvoicesQuery, error) {
	q := ListInvoicesQuery{guard: guard.NewConstructorGuard()}

	if err := actor.Validate(); err != nil {
		return ListInvoicesQuery{}, err
	}

	q.actor = actor
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrListInvoicesQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q ListInvoicesQuery) Actor() access.Actor { return q.actor }
