package commands

import (
	"context"

	"shipledger/internal/pkg/errs"
)

// UpdatePartnerCommandHandler handles partner catalog updates.
type UpdatePartnerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdatePartnerCommandHandler creates a handler for partner updates.
func NewUpdatePartnerCommandHandler(uowFactory CatalogUoWFactory) UpdatePartnerCommandHandler {
	return UpdatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner update command.
func (h *UpdatePartnerCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageCatalog() {
		return errs.NewAuthorizationError("update partner")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	aggregate, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.Name(), cmd.Rate()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
