package commands

import (
	"context"
	"fmt"

	"shipledger/internal/pkg/errs"
)

// DeletePartnerCommandHandler handles partner removal from the catalog.
// Deletion is refused while any order still references the partner, since
// those orders feed the partner's fee aggregate.
type DeletePartnerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeletePartnerCommandHandler creates a handler for partner deletion.
func NewDeletePartnerCommandHandler(uowFactory CatalogUoWFactory) DeletePartnerCommandHandler {
	return DeletePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner deletion command.
func (h *DeletePartnerCommandHandler) Handle(ctx context.Context, cmd DeletePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageCatalog() {
		return errs.NewAuthorizationError("delete partner")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	if _, err := partnerRepo.Get(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	references, err := uow.OrderRepository().CountForPartner(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}
	if references > 0 {
		return errs.NewValidationError(
			fmt.Sprintf("cannot delete: partner is referenced by %d orders", references))
	}

	if err := partnerRepo.Delete(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
