package commands

import (
	"context"

	"shipledger/internal/pkg/errs"
)

// UpdateSalesAgentCommandHandler handles sales agent catalog updates.
type UpdateSalesAgentCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateSalesAgentCommandHandler creates a handler for agent updates.
func NewUpdateSalesAgentCommandHandler(uowFactory CatalogUoWFactory) UpdateSalesAgentCommandHandler {
	return UpdateSalesAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent update command.
func (h *UpdateSalesAgentCommandHandler) Handle(ctx context.Context, cmd UpdateSalesAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageCatalog() {
		return errs.NewAuthorizationError("update sales agent")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.SalesAgentRepository()
	aggregate, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.Name(), cmd.Rate()); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
