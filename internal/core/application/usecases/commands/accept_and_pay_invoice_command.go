package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/guard"
)

var ErrAcceptAndPayInvoiceCommandIsNotConstructed = errors.New(
	"AcceptAndPayInvoiceCommand must be created via NewAcceptAndPayInvoiceCommand constructor",
)

// AcceptAndPayInvoiceCommand represents an invoice's own subject settling
// their Pending invoice directly to Paid, recording the payment mode. This
// is the one lifecycle path completed by the subject rather than an admin.
type AcceptAndPayInvoiceCommand struct { //nolint:recvcheck //using for validation
	actor       access.Actor
	invoiceID   kernel.UUID
	paymentMode billing.PaymentMode

	guard guard.ConstructorGuard
}

// NewAcceptAndPayInvoiceCommand creates a command to accept and pay an
// invoice.
func NewAcceptAndPayInvoiceCommand(actor access.Actor, invoiceID kernel.UUID, paymentMode billing.PaymentMode) (AcceptAndPayInvoiceCommand, error) {
	cmd := AcceptAndPayInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		invoiceID.Validate(),
		paymentMode.Validate(),
	); err != nil {
		return AcceptAndPayInvoiceCommand{}, err
	}

	cmd.actor = actor
	cmd.invoiceID = invoiceID
	cmd.paymentMode = paymentMode
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptAndPayInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrAcceptAndPayInvoiceCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c AcceptAndPayInvoiceCommand) Actor() access.Actor { return c.actor }

// InvoiceID returns the identifier of the invoice to settle.
func (c AcceptAndPayInvoiceCommand) InvoiceID() kernel.UUID { return c.invoiceID }

// PaymentMode returns the chosen settlement channel.
func (c AcceptAndPayInvoiceCommand) PaymentMode() billing.PaymentMode { return c.paymentMode }
