package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand represents a request to register a shipping partner.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	actor     access.Actor
	partnerID kernel.UUID
	name      string
	rate      float64
	userID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to register a partner. Rate is
// the partner's default courier fee; userID optionally links a login.
func NewCreatePartnerCommand(actor access.Actor, partnerID kernel.UUID, name string, rate float64, userID *kernel.UUID) (CreatePartnerCommand, error) {
	cmd := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		partnerID.Validate(),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	if name == "" {
		return CreatePartnerCommand{}, errs.NewValidationError("partner name is required")
	}

	cmd.actor = actor
	cmd.partnerID = partnerID
	cmd.name = name
	cmd.rate = rate
	cmd.userID = userID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c CreatePartnerCommand) Actor() access.Actor { return c.actor }

// PartnerID returns the identifier for the new partner.
func (c CreatePartnerCommand) PartnerID() kernel.UUID { return c.partnerID }

// Name returns the partner's display name.
func (c CreatePartnerCommand) Name() string { return c.name }

// Rate returns the partner's default fee rate.
func (c CreatePartnerCommand) Rate() float64 { return c.rate }

// UserID returns the optional linked login identity.
func (c CreatePartnerCommand) UserID() *kernel.UUID { return c.userID }
