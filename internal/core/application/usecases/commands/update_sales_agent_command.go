package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrUpdateSalesAgentCommandIsNotConstructed = errors.New(
	"UpdateSalesAgentCommand must be created via NewUpdateSalesAgentCommand constructor",
)

// UpdateSalesAgentCommand represents a request to rename an agent or change
// its default commission rate. Commission snapshots on stored orders are
// not rewritten.
type UpdateSalesAgentCommand struct { //nolint:recvcheck //using for validation
	actor   access.Actor
	agentID kernel.UUID
	name    string
	rate    float64

	guard guard.ConstructorGuard
}

// NewUpdateSalesAgentCommand creates a command to update a sales agent.
func NewUpdateSalesAgentCommand(actor access.Actor, agentID kernel.UUID, name string, rate float64) (UpdateSalesAgentCommand, error) {
	cmd := UpdateSalesAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		agentID.Validate(),
	); err != nil {
		return UpdateSalesAgentCommand{}, err
	}

	if name == "" {
		return UpdateSalesAgentCommand{}, errs.NewValidationError("agent name is required")
	}

	cmd.actor = actor
	cmd.agentID = agentID
	cmd.name = name
	cmd.rate = rate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSalesAgentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSalesAgentCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c UpdateSalesAgentCommand) Actor() access.Actor { return c.actor }

// AgentID returns the identifier of the agent to update.
func (c UpdateSalesAgentCommand) AgentID() kernel.UUID { return c.agentID }

// Name returns the new display name.
func (c UpdateSalesAgentCommand) Name() string { return c.name }

// Rate returns the new default commission percentage.
func (c UpdateSalesAgentCommand) Rate() float64 { return c.rate }
