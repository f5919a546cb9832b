package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrSetInvoiceStatusCommandIsNotConstructed = errors.New(
	"SetInvoiceStatusCommand must be created via NewSetInvoiceStatusCommand constructor",
)

// SetInvoiceStatusCommand represents an admin resolving a Pending invoice
// to Paid or Rejected. PaymentMode accompanies a Paid resolution and is
// ignored otherwise.
type SetInvoiceStatusCommand struct { //nolint:recvcheck //using for validation
	actor       access.Actor
	invoiceID   kernel.UUID
	status      billing.InvoiceStatus
	paymentMode billing.PaymentMode

	guard guard.ConstructorGuard
}

// NewSetInvoiceStatusCommand creates a command to resolve an invoice. The
// target status must be terminal; an invoice cannot be reset to Pending.
func NewSetInvoiceStatusCommand(actor access.Actor, invoiceID kernel.UUID, status billing.InvoiceStatus, paymentMode billing.PaymentMode) (SetInvoiceStatusCommand, error) {
	cmd := SetInvoiceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		invoiceID.Validate(),
		status.Validate(),
	); err != nil {
		return SetInvoiceStatusCommand{}, err
	}

	if !status.IsTerminal() {
		return SetInvoiceStatusCommand{}, errs.NewValidationError("invoice can only be resolved to Paid or Rejected")
	}
	if status == billing.InvoiceStatusPaid {
		if err := paymentMode.Validate(); err != nil {
			return SetInvoiceStatusCommand{}, err
		}
	}

	cmd.actor = actor
	cmd.invoiceID = invoiceID
	cmd.status = status
	cmd.paymentMode = paymentMode
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetInvoiceStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetInvoiceStatusCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c SetInvoiceStatusCommand) Actor() access.Actor { return c.actor }

// InvoiceID returns the identifier of the invoice to resolve.
func (c SetInvoiceStatusCommand) InvoiceID() kernel.UUID { return c.invoiceID }

// Status returns the terminal status to apply.
func (c SetInvoiceStatusCommand) Status() billing.InvoiceStatus { return c.status }

// PaymentMode returns the settlement channel for a Paid resolution.
func (c SetInvoiceStatusCommand) PaymentMode() billing.PaymentMode { return c.paymentMode }
