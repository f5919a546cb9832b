package commands

import (
	"context"
	"time"

	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/pkg/errs"
)

// GenerateInvoiceCommandHandler handles invoice generation. Internal
// business-share invoices are SUPER_ADMIN-tier; partner and agent invoices
// are admin-tier.
type GenerateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewGenerateInvoiceCommandHandler creates a handler for invoice generation.
func NewGenerateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) GenerateInvoiceCommandHandler {
	return GenerateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice generation command.
func (h *GenerateInvoiceCommandHandler) Handle(ctx context.Context, cmd GenerateInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if cmd.Subject().Kind() == billing.SubjectInternal {
		if !actor.CanGenerateInternalInvoices() {
			return errs.NewAuthorizationError("generate internal invoice")
		}
	} else if !actor.CanViewGlobalBilling() {
		return errs.NewAuthorizationError("generate invoice")
	}

	aggregate, err := billing.NewInvoiceForRange(cmd.InvoiceID(), cmd.Subject(), cmd.Amount(), cmd.Period(), time.Now())
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

	if err = uow.InvoiceRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
