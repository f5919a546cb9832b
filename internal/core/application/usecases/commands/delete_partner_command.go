package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/guard"
)

var ErrDeletePartnerCommandIsNotConstructed = errors.New(
	"DeletePartnerCommand must be created via NewDeletePartnerCommand constructor",
)

// DeletePartnerCommand represents a request to remove a partner from the
// catalog.
type DeletePartnerCommand struct { //nolint:recvcheck //using for validation
	actor     access.Actor
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePartnerCommand creates a command to delete a partner.
func NewDeletePartnerCommand(actor access.Actor, partnerID kernel.UUID) (DeletePartnerCommand, error) {
	cmd := DeletePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		partnerID.Validate(),
	); err != nil {
		return DeletePartnerCommand{}, err
	}

	cmd.actor = actor
	cmd.partnerID = partnerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePartnerCommand) Validate() error {
	return c.guard.Validate(ErrDeletePartnerCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c DeletePartnerCommand) Actor() access.Actor { return c.actor }

// PartnerID returns the identifier of the partner to delete.
func (c DeletePartnerCommand) PartnerID() kernel.UUID { return c.partnerID }
