package queries

import (
	"errors"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

// AuthenticateUserQuery verifies a username/password pair and resolves the
// identity a session token is minted from. It is the only query without an
// acting identity; it produces one.
type AuthenticateUserQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates an authentication query.
func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	q := AuthenticateUserQuery{guard: guard.NewConstructorGuard()}

	if username == "" {
		return AuthenticateUserQuery{}, errs.NewValidationError("username is required")
	}
	if password == "" {
		return AuthenticateUserQuery{}, errs.NewValidationError("password is required")
	}

	q.username = username
	q.password = password
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Username returns the submitted username.
func (q AuthenticateUserQuery) Username() string { return q.username }

// Password returns the submitted plaintext password.
func (q AuthenticateUserQuery) Password() string { return q.password }

// AuthenticatedUserView is the resolved identity of a successful login. The
// partner/agent linkage is resolved here, at token issuance, so request
// handling never needs a catalog lookup to scope the actor.
type AuthenticatedUserView struct {
	ID            kernel.UUID
	Username      string
	Role          string
	VisibleFields string
	PartnerID     *kernel.UUID
	AgentID       *kernel.UUID
}
