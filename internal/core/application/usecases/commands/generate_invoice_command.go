package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
	"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
)

// GenerateInvoiceCommand represents a request to create a Pending invoice
// for a billing subject over a date range. The amount is the figure the
// approving admin previewed via the billing aggregation; it is frozen onto
// the invoice.
type GenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	actor     access.Actor
	invoiceID kernel.UUID
	subject   billing.Subject
	amount    float64
	period    kernel.DateRange

	guard guard.ConstructorGuard
}

// NewGenerateInvoiceCommand creates a command to generate an invoice.
// Fails with a ValidationError when amount is not positive.
func NewGenerateInvoiceCommand(actor access.Actor, invoiceID kernel.UUID, subject billing.Subject, amount float64, period kernel.DateRange) (GenerateInvoiceCommand, error) {
	cmd := GenerateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		invoiceID.Validate(),
		subject.Validate(),
		period.Validate(),
	); err != nil {
		return GenerateInvoiceCommand{}, err
	}

	if amount <= 0 {
		return GenerateInvoiceCommand{}, errs.NewValidationError("invoice amount must be greater than 0")
	}

	cmd.actor = actor
	cmd.invoiceID = invoiceID
	cmd.subject = subject
	cmd.amount = amount
	cmd.period = period
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c GenerateInvoiceCommand) Actor() access.Actor { return c.actor }

// InvoiceID returns the identifier for the new invoice.
func (c GenerateInvoiceCommand) InvoiceID() kernel.UUID { return c.invoiceID }

// Subject returns the billed subject.
func (c GenerateInvoiceCommand) Subject() billing.Subject { return c.subject }

// Amount returns the amount to freeze onto the invoice.
func (c GenerateInvoiceCommand) Amount() float64 { return c.amount }

// Period returns the billed date range.
func (c GenerateInvoiceCommand) Period() kernel.DateRange { return c.period }
