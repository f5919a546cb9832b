package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserParams is a partial patch over a login account. Nil fields keep
// the stored value. Password, when set, is the new plaintext credential.
type UpdateUserParams struct {
	Password      *string
	Role          *access.Role
	VisibleFields *string
}

// UpdateUserCommand represents a request to patch a login account.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	actor  access.Actor
	userID kernel.UUID
	params UpdateUserParams

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to patch a user.
func NewUpdateUserCommand(actor access.Actor, userID kernel.UUID, params UpdateUserParams) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		userID.Validate(),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	if params.Role != nil {
		if err := params.Role.Validate(); err != nil {
			return UpdateUserCommand{}, err
		}
	}

	cmd.actor = actor
	cmd.userID = userID
	cmd.params = params
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c UpdateUserCommand) Actor() access.Actor { return c.actor }

// UserID returns the identifier of the account to patch.
func (c UpdateUserCommand) UserID() kernel.UUID { return c.userID }

// Params returns the patch.
func (c UpdateUserCommand) Params() UpdateUserParams { return c.params }
