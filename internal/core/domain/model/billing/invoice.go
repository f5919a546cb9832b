package billing

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through a factory method.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoiceForRange or NewInvoiceForMonth")

// PaymentMode is the manual settlement channel recorded when an invoice is
// paid. The set is fixed.
type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "Cash"
	PaymentModeUPI          PaymentMode = "UPI"
	PaymentModeBankTransfer PaymentMode = "Bank Transfer"
)

// Validate checks the payment mode against the fixed set.
func (m PaymentMode) Validate() error {
	switch m {
	case PaymentModeCash, PaymentModeUPI, PaymentModeBankTransfer:
		return nil
	default:
		return errs.NewValidationError(fmt.Sprintf("%q is not a valid payment mode", string(m)))
	}
}

var monthLabelPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Invoice is one periodic bill for a single subject. Created Pending with a
// frozen amount; resolved exactly once to Paid or Rejected.
type Invoice struct {
	id          kernel.UUID
	subject     Subject
	amount      float64
	startDate   *time.Time
	endDate     *time.Time
	month       string
	status      InvoiceStatus
	paymentMode PaymentMode
	createdAt   time.Time

	isConstructed bool
}

// NewInvoiceForRange creates a Pending invoice covering an explicit date
// range. The month label is derived from the range start for legacy
// displays. Fails with a ValidationError when amount is not positive.
func NewInvoiceForRange(id kernel.UUID, subject Subject, amount float64, period kernel.DateRange, createdAt time.Time) (*Invoice, error) {
	inv := &Invoice{isConstructed: true}

	if err := errors.Join(
		inv.setID(id),
		inv.setSubject(subject),
		inv.setAmount(amount),
		period.Validate(),
	); err != nil {
		return nil, err
	}

	start := period.Start()
	end := period.End()
	inv.startDate = &start
	inv.endDate = &end
	inv.month = start.Format("2006-01")
	inv.status = InvoiceStatusPending
	inv.createdAt = createdAt
	return inv, nil
}

// NewInvoiceForMonth creates a Pending invoice carrying only a legacy
// YYYY-MM month label, as produced by the self-service monthly filing flow.
func NewInvoiceForMonth(id kernel.UUID, subject Subject, amount float64, month string, createdAt time.Time) (*Invoice, error) {
	inv := &Invoice{isConstructed: true}

	if err := errors.Join(
		inv.setID(id),
		inv.setSubject(subject),
		inv.setAmount(amount),
	); err != nil {
		return nil, err
	}

	if !monthLabelPattern.MatchString(month) {
		return nil, errs.NewValidationError(fmt.Sprintf("%q is not a valid YYYY-MM month label", month))
	}

	inv.month = month
	inv.status = InvoiceStatusPending
	inv.createdAt = createdAt
	return inv, nil
}

// RestoreInvoice reconstructs an Invoice from persistence, including
// terminal ones.
func RestoreInvoice(
	id kernel.UUID,
	subject Subject,
	amount float64,
	startDate, endDate *time.Time,
	month string,
	status InvoiceStatus,
	paymentMode PaymentMode,
	createdAt time.Time,
) (*Invoice, error) {
	inv := &Invoice{isConstructed: true}

	if err := errors.Join(
		inv.setID(id),
		inv.setSubject(subject),
		inv.setAmount(amount),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	inv.startDate = startDate
	inv.endDate = endDate
	inv.month = month
	inv.status = status
	inv.paymentMode = paymentMode
	inv.createdAt = createdAt
	return inv, nil
}

// Validate ensures the Invoice was created via a factory method.
func (inv *Invoice) Validate() error {
	if inv == nil || !inv.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice's unique identifier.
func (inv *Invoice) ID() kernel.UUID { return inv.id }

// Subject returns the billed subject.
func (inv *Invoice) Subject() Subject { return inv.subject }

// Amount returns the frozen invoiced amount.
func (inv *Invoice) Amount() float64 { return inv.amount }

// StartDate returns the inclusive range start, or nil for month-label invoices.
func (inv *Invoice) StartDate() *time.Time { return inv.startDate }

// EndDate returns the inclusive range end, or nil for month-label invoices.
func (inv *Invoice) EndDate() *time.Time { return inv.endDate }

// Month returns the YYYY-MM label.
func (inv *Invoice) Month() string { return inv.month }

// Status returns the lifecycle state.
func (inv *Invoice) Status() InvoiceStatus { return inv.status }

// PaymentMode returns the recorded settlement channel (set when paid).
func (inv *Invoice) PaymentMode() PaymentMode { return inv.paymentMode }

// CreatedAt returns the creation timestamp.
func (inv *Invoice) CreatedAt() time.Time { return inv.createdAt }

// MarkPaid transitions a Pending invoice to Paid, recording the payment
// mode. Returns a ConflictError if the invoice was already resolved.
func (inv *Invoice) MarkPaid(mode PaymentMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if inv.status != InvoiceStatusPending {
		return errs.NewConflictError("invoice already resolved as", inv.status.String())
	}
	inv.status = InvoiceStatusPaid
	inv.paymentMode = mode
	return nil
}

// Reject transitions a Pending invoice to Rejected. Returns a ConflictError
// if the invoice was already resolved.
func (inv *Invoice) Reject() error {
	if inv.status != InvoiceStatusPending {
		return errs.NewConflictError("invoice already resolved as", inv.status.String())
	}
	inv.status = InvoiceStatusRejected
	return nil
}

func (inv *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	inv.id = id
	return nil
}

func (inv *Invoice) setSubject(subject Subject) error {
	if err := subject.Validate(); err != nil {
		return err
	}
	inv.subject = subject
	return nil
}

func (inv *Invoice) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValidationError("invoice amount must be greater than 0")
	}
	inv.amount = amount
	return nil
}
