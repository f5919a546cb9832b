package commands

import (
	"context"

	"shipledger/internal/pkg/errs"
)

// SetInvoiceStatusCommandHandler handles admin-tier invoice resolution. The
// transition runs as an atomic compare-and-set on the Pending status:
// concurrent Paid and Rejected resolutions of the same invoice end with
// exactly one success and one ConflictError.
type SetInvoiceStatusCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewSetInvoiceStatusCommandHandler creates a handler for invoice
// resolution.
func NewSetInvoiceStatusCommandHandler(uowFactory InvoiceUoWFactory) SetInvoiceStatusCommandHandler {
	return SetInvoiceStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice resolution command.
func (h *SetInvoiceStatusCommandHandler) Handle(ctx context.Context, cmd SetInvoiceStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().CanResolveInvoices() {
		return errs.NewAuthorizationError("resolve invoice")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()
	if _, err := invoiceRepo.Get(ctx, cmd.InvoiceID()); err != nil {
		return err
	}

	if err := invoiceRepo.SetStatusIfPending(ctx, cmd.InvoiceID(), cmd.Status(), cmd.PaymentMode()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
