package commands

import (
	"context"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/pkg/errs"
)

// SelfFileInvoiceCommandHandler handles self-service invoice filing. The
// subject is derived from the actor's own linked profile, never from
// client input: a PARTNER files against their Partner profile, a STAFF
// actor against their SalesAgent profile.
type SelfFileInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewSelfFileInvoiceCommandHandler creates a handler for self-service
// invoice filing.
func NewSelfFileInvoiceCommandHandler(uowFactory InvoiceUoWFactory) SelfFileInvoiceCommandHandler {
	return SelfFileInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the self-filing command. Actors without a linked
// profile, or with roles outside STAFF/PARTNER, are refused.
func (h *SelfFileInvoiceCommandHandler) Handle(ctx context.Context, cmd SelfFileInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	subject, err := ownSubject(cmd.Actor())
	if err != nil {
		return err
	}

	aggregate, err := billing.NewInvoiceForMonth(cmd.InvoiceID(), subject, cmd.Amount(), cmd.Month(), time.Now())
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

// ownSubject maps an actor to the billing subject it may file or settle
// invoices for.
func ownSubject(actor access.Actor) (billing.Subject, error) {
	switch actor.Role() {
	case access.RolePartner:
		if actor.PartnerID() == nil {
			return billing.Subject{}, errs.NewAuthorizationError("file invoice without a linked partner profile")
		}
		return billing.SubjectForPartner(*actor.PartnerID())
	case access.RoleStaff:
		if actor.AgentID() == nil {
			return billing.Subject{}, errs.NewAuthorizationError("file invoice without a linked agent profile")
		}
		return billing.SubjectForAgent(*actor.AgentID())
	default:
		return billing.Subject{}, errs.NewAuthorizationError("file own invoice")
	}
}
