package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand represents a request to rename a partner or change
// its default fee rate. Stored orders keep their snapshotted figures.
type UpdatePartnerCommand struct { //nolint:recvcheck //using for validation
	actor     access.Actor
	partnerID kernel.UUID
	name      string
	rate      float64

	guard guard.ConstructorGuard
}

// NewUpdatePartnerCommand creates a command to update a partner.
func NewUpdatePartnerCommand(actor access.Actor, partnerID kernel.UUID, name string, rate float64) (UpdatePartnerCommand, error) {
	cmd := UpdatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		partnerID.Validate(),
	); err != nil {
		return UpdatePartnerCommand{}, err
	}

	if name == "" {
		return UpdatePartnerCommand{}, errs.NewValidationError("partner name is required")
	}

	cmd.actor = actor
	cmd.partnerID = partnerID
	cmd.name = name
	cmd.rate = rate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c UpdatePartnerCommand) Actor() access.Actor { return c.actor }

// PartnerID returns the identifier of the partner to update.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID { return c.partnerID }

// Name returns the new display name.
func (c UpdatePartnerCommand) Name() string { return c.name }

// Rate returns the new default fee rate.
func (c UpdatePartnerCommand) Rate() float64 { return c.rate }
