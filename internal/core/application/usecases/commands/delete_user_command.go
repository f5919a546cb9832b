package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents a request to remove a login account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	actor  access.Actor
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to delete a user. An actor cannot
// delete their own account.
func NewDeleteUserCommand(actor access.Actor, userID kernel.UUID) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		userID.Validate(),
	); err != nil {
		return DeleteUserCommand{}, err
	}

	if actor.UserID().IsEqual(userID) {
		return DeleteUserCommand{}, errs.NewValidationError("cannot delete your own account")
	}

	cmd.actor = actor
	cmd.userID = userID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c DeleteUserCommand) Actor() access.Actor { return c.actor }

// UserID returns the identifier of the account to delete.
func (c DeleteUserCommand) UserID() kernel.UUID { return c.userID }
