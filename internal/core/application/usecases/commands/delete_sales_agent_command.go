package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/guard"
)

var ErrDeleteSalesAgentCommandIsNotConstructed = errors.New(
	"DeleteSalesAgentCommand must be created via NewDeleteSalesAgentCommand constructor",
)

// DeleteSalesAgentCommand represents a request to remove a sales agent
// from the catalog.
type DeleteSalesAgentCommand struct { //nolint:recvcheck //using for validation
	actor   access.Actor
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteSalesAgentCommand creates a command to delete a sales agent.
func NewDeleteSalesAgentCommand(actor access.Actor, agentID kernel.UUID) (DeleteSalesAgentCommand, error) {
	cmd := DeleteSalesAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		agentID.Validate(),
	); err != nil {
		return DeleteSalesAgentCommand{}, err
	}

	cmd.actor = actor
	cmd.agentID = agentID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteSalesAgentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSalesAgentCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c DeleteSalesAgentCommand) Actor() access.Actor { return c.actor }

// AgentID returns the identifier of the agent to delete.
func (c DeleteSalesAgentCommand) AgentID() kernel.UUID { return c.agentID }
