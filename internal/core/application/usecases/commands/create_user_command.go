package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a login account.
// VisibleFields is the comma-separated allow-list stored on the account;
// "*" means unrestricted.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	actor         access.Actor
	userID        kernel.UUID
	username      string
	password      string
	role          access.Role
	visibleFields string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user.
func NewCreateUserCommand(actor access.Actor, userID kernel.UUID, username, password string, role access.Role, visibleFields string) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		userID.Validate(),
		role.Validate(),
	); err != nil {
		return CreateUserCommand{}, err
	}

	if username == "" {
		return CreateUserCommand{}, errs.NewValidationError("username is required")
	}
	if password == "" {
		return CreateUserCommand{}, errs.NewValidationError("password is required")
	}

	cmd.actor = actor
	cmd.userID = userID
	cmd.username = username
	cmd.password = password
	cmd.role = role
	cmd.visibleFields = visibleFields
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c CreateUserCommand) Actor() access.Actor { return c.actor }

// UserID returns the identifier for the new account.
func (c CreateUserCommand) UserID() kernel.UUID { return c.userID }

// Username returns the login name.
func (c CreateUserCommand) Username() string { return c.username }

// Password returns the plaintext credential; the handler hashes it before
// the domain ever sees it.
func (c CreateUserCommand) Password() string { return c.password }

// Role returns the account's role.
func (c CreateUserCommand) Role() access.Role { return c.role }

// VisibleFields returns the stored field allow-list.
func (c CreateUserCommand) VisibleFields() string { return c.visibleFields }
