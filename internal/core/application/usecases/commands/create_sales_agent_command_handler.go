package commands

import (
	"context"

	"shipledger/internal/core/domain/model/catalog"
	"shipledger/internal/pkg/errs"
)

// CreateSalesAgentCommandHandler handles sales agent registration.
type CreateSalesAgentCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateSalesAgentCommandHandler creates a handler for agent
// registration.
func NewCreateSalesAgentCommandHandler(uowFactory CatalogUoWFactory) CreateSalesAgentCommandHandler {
	return CreateSalesAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent registration command.
func (h *CreateSalesAgentCommandHandler) Handle(ctx context.Context, cmd CreateSalesAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageCatalog() {
		return errs.NewAuthorizationError("create sales agent")
	}

	aggregate, err := catalog.NewSalesAgent(cmd.AgentID(), cmd.Name(), cmd.Rate(), cmd.UserID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SalesAgentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
