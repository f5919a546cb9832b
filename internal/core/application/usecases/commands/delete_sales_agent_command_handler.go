package commands

import (
	"context"

	"shipledger/internal/pkg/errs"
)

// DeleteSalesAgentCommandHandler handles sales agent removal from the
// catalog.
type DeleteSalesAgentCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteSalesAgentCommandHandler creates a handler for agent deletion.
func NewDeleteSalesAgentCommandHandler(uowFactory CatalogUoWFactory) DeleteSalesAgentCommandHandler {
	return DeleteSalesAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent deletion command.
func (h *DeleteSalesAgentCommandHandler) Handle(ctx context.Context, cmd DeleteSalesAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageCatalog() {
		return errs.NewAuthorizationError("delete sales agent")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.SalesAgentRepository()
	if _, err := agentRepo.Get(ctx, cmd.AgentID()); err != nil {
		return err
	}

	if err := agentRepo.Delete(ctx, cmd.AgentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
