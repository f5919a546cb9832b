package commands

import (
	"context"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/pkg/errs"
)

// AcceptAndPayInvoiceCommandHandler handles the subject-side settlement of
// an invoice. The transition runs as an atomic compare-and-set on the
// Pending status, so a concurrent admin resolution and a subject settlement
// end with exactly one winner.
type AcceptAndPayInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewAcceptAndPayInvoiceCommandHandler creates a handler for subject-side
// invoice settlement.
func NewAcceptAndPayInvoiceCommandHandler(uowFactory InvoiceUoWFactory) AcceptAndPayInvoiceCommandHandler {
	return AcceptAndPayInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept-and-pay command. Only the invoice's own
// subject, matched by the actor's linked partner or agent profile, may
// settle it here.
func (h *AcceptAndPayInvoiceCommandHandler) Handle(ctx context.Context, cmd AcceptAndPayInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()
	aggregate, err := invoiceRepo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	if !isOwnInvoice(cmd.Actor(), aggregate.Subject()) {
		return errs.NewAuthorizationError("settle another subject's invoice")
	}

	if err = invoiceRepo.SetStatusIfPending(ctx, cmd.InvoiceID(), billing.InvoiceStatusPaid, cmd.PaymentMode()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// isOwnInvoice reports whether the invoice's subject matches the actor's
// linked profile.
func isOwnInvoice(actor access.Actor, subject billing.Subject) bool {
	switch subject.Kind() {
	case billing.SubjectPartner:
		return actor.PartnerID() != nil && actor.PartnerID().IsEqual(subject.EntityID())
	case billing.SubjectAgent:
		return actor.AgentID() != nil && actor.AgentID().IsEqual(subject.EntityID())
	default:
		return false
	}
}
