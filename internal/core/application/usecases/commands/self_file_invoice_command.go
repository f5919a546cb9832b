package commands

import (
	"errors"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrSelfFileInvoiceCommandIsNotConstructed = errors.New(
	"SelfFileInvoiceCommand must be created via NewSelfFileInvoiceCommand constructor",
)

// SelfFileInvoiceCommand represents a STAFF or PARTNER actor filing their
// own monthly invoice for their accrued amount. Filing needs no admin
// approval; moving the invoice to Paid still does, unless the subject
// settles it through the accept-and-pay path.
type SelfFileInvoiceCommand struct { //nolint:recvcheck //using for validation
	actor     access.Actor
	invoiceID kernel.UUID
	amount    float64
	month     string

	guard guard.ConstructorGuard
}

// NewSelfFileInvoiceCommand creates a command to self-file a monthly
// invoice. Month is a YYYY-MM label.
func NewSelfFileInvoiceCommand(actor access.Actor, invoiceID kernel.UUID, amount float64, month string) (SelfFileInvoiceCommand, error) {
	cmd := SelfFileInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		invoiceID.Validate(),
	); err != nil {
		return SelfFileInvoiceCommand{}, err
	}

	if amount <= 0 {
		return SelfFileInvoiceCommand{}, errs.NewValidationError("invoice amount must be greater than 0")
	}
	if month == "" {
		return SelfFileInvoiceCommand{}, errs.NewValidationError("month is required")
	}

	cmd.actor = actor
	cmd.invoiceID = invoiceID
	cmd.amount = amount
	cmd.month = month
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelfFileInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrSelfFileInvoiceCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c SelfFileInvoiceCommand) Actor() access.Actor { return c.actor }

// InvoiceID returns the identifier for the new invoice.
func (c SelfFileInvoiceCommand) InvoiceID() kernel.UUID { return c.invoiceID }

// Amount returns the filed amount.
func (c SelfFileInvoiceCommand) Amount() float64 { return c.amount }

// Month returns the YYYY-MM label the filing covers.
func (c SelfFileInvoiceCommand) Month() string { return c.month }
