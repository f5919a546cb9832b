package queries

import (
	"errors"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves all login accounts. Admin-only.
type ListUsersQuery struct {
	actor access.Actor

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a user listing query.
func NewListUsersQuery(actor access.Actor) (ListUsersQuery, error) {
	q := ListUsersQuery{guard: guard.NewConstructorGuard()}

	if err := actor.Validate(); err != nil {
		return ListUsersQuery{}, err
	}

	q.actor = actor
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q ListUsersQuery) Actor() access.Actor { return q.actor }

// UserView is the login account read model. Password hashes never leave the
// persistence layer through this query.
type UserView struct {
	ID            kernel.UUID
	Username      string
	Role          string
	VisibleFields string
	CreatedAt     time.Time
}
