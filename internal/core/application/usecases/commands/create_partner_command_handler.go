package commands

import (
	"context"

	"shipledger/internal/core/domain/model/catalog"
	"shipledger/internal/pkg/errs"
)

// CreatePartnerCommandHandler handles shipping partner registration.
type CreatePartnerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner
// registration.
func NewCreatePartnerCommandHandler(uowFactory CatalogUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner registration command. Partner names are
// unique; a duplicate surfaces as a ConflictError.
func (h *CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanManageCatalog() {
		return errs.NewAuthorizationError("create partner")
	}

	aggregate, err := catalog.NewPartner(cmd.PartnerID(), cmd.Name(), cmd.Rate(), cmd.UserID())
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

	if err = uow.PartnerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
