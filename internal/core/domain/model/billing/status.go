package billing

import (
	"fmt"

	"shipledger/internal/pkg/errs"
)

// InvoiceStatus is the lifecycle state of an invoice.
//
// State transitions:
//
//	Pending ──> Paid
//	       └──> Rejected
//
// Paid and Rejected are terminal: no further transition, no amount edit.
type InvoiceStatus int

const (
	// InvoiceStatusUnknown represents an invalid or undefined status.
	InvoiceStatusUnknown InvoiceStatus = iota

	// InvoiceStatusPending is the initial state awaiting resolution.
	InvoiceStatusPending

	// InvoiceStatusPaid indicates the invoice was settled.
	InvoiceStatusPaid

	// InvoiceStatusRejected indicates the invoice was declined.
	InvoiceStatusRejected
)

func getInvoiceStatusStrings() map[InvoiceStatus]string {
	return map[InvoiceStatus]string{
		InvoiceStatusUnknown:  "Unknown",
		InvoiceStatusPending:  "Pending",
		InvoiceStatusPaid:     "Paid",
		InvoiceStatusRejected: "Rejected",
	}
}

// InvoiceStatusFromString parses a status name from client input or persistence.
func InvoiceStatusFromString(s string) (InvoiceStatus, error) {
	switch s {
	case "Pending":
		return InvoiceStatusPending, nil
	case "Paid":
		return InvoiceStatusPaid, nil
	case "Rejected":
		return InvoiceStatusRejected, nil
	default:
		return InvoiceStatusUnknown, errs.NewValidationError(fmt.Sprintf("%q is not a valid invoice status", s))
	}
}

// Validate checks that the status is one of the defined states.
func (s InvoiceStatus) Validate() error {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusRejected:
		return nil
	default:
		return errs.NewValidationError(fmt.Sprintf("%d is not a valid invoice status", s))
	}
}

// String returns the human-readable name. Implements fmt.Stringer.
func (s InvoiceStatus) String() string {
	if str, ok := getInvoiceStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusRejected
}
