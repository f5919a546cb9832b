package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrCreateSalesAgentCommandIsNotConstructed = errors.New(
	"CreateSalesAgentCommand must be created via NewCreateSalesAgentCommand constructor",
)

// CreateSalesAgentCommand represents a request to register a sales agent.
type CreateSalesAgentCommand struct { //nolint:recvcheck //using for validation
	actor   access.Actor
	agentID kernel.UUID
	name    string
	rate    float64
	userID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateSalesAgentCommand creates a command to register a sales agent.
// Rate is the default commission percentage snapshotted onto orders linked
// to this agent.
func NewCreateSalesAgentCommand(actor access.Actor, agentID kernel.UUID, name string, rate float64, userID *kernel.UUID) (CreateSalesAgentCommand, error) {
	cmd := CreateSalesAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		agentID.Validate(),
	); err != nil {
		return CreateSalesAgentCommand{}, err
	}

	if name == "" {
		return CreateSalesAgentCommand{}, errs.NewValidationError("agent name is required")
	}

	cmd.actor = actor
	cmd.agentID = agentID
	cmd.name = name
	cmd.rate = rate
	cmd.userID = userID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSalesAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateSalesAgentCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c CreateSalesAgentCommand) Actor() access.Actor { return c.actor }

// AgentID returns the identifier for the new agent.
func (c CreateSalesAgentCommand) AgentID() kernel.UUID { return c.agentID }

// Name returns the agent's display name.
func (c CreateSalesAgentCommand) Name() string { return c.name }

// Rate returns the agent's default commission percentage.
func (c CreateSalesAgentCommand) Rate() float64 { return c.rate }

// UserID returns the optional linked login identity.
func (c CreateSalesAgentCommand) UserID() *kernel.UUID { return c.userID }
