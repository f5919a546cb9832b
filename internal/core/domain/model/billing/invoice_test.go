package billing_test

import (
	"testing"
	"time"

	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownersSubject(t *testing.T) billing.Subject {
	t.Helper()
	s, err := billing.SubjectForRecipient(billing.RecipientOwners)
	require.NoError(t, err)
	return s
}

func marchRange(t *testing.T) kernel.DateRange {
	t.Helper()
	r, err := kernel.NewDateRange(
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return r
}

func TestSubjectConstructors(t *testing.T) {
	t.Run("internal_recipient", func(t *testing.T) {
		s, err := billing.SubjectForRecipient(billing.RecipientOperations)
		require.NoError(t, err)
		assert.Equal(t, billing.SubjectInternal, s.Kind())
		assert.Equal(t, billing.RecipientOperations, s.Recipient())
	})

	t.Run("unknown_recipient_rejected", func(t *testing.T) {
		_, err := billing.SubjectForRecipient(billing.Recipient("Accounting"))
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("partner_subject", func(t *testing.T) {
		id := kernel.NewUUID()
		s, err := billing.SubjectForPartner(id)
		require.NoError(t, err)
		assert.Equal(t, billing.SubjectPartner, s.Kind())
		assert.True(t, s.EntityID().IsEqual(id))
	})

	t.Run("agent_subject", func(t *testing.T) {
		s, err := billing.SubjectForAgent(kernel.NewUUID())
		require.NoError(t, err)
		assert.Equal(t, billing.SubjectAgent, s.Kind())
	})

	t.Run("zero_value_invalid", func(t *testing.T) {
		var s billing.Subject
		require.Error(t, s.Validate())
	})
}

func TestNewInvoiceForRange(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		inv, err := billing.NewInvoiceForRange(kernel.NewUUID(), ownersSubject(t), 1250.75, marchRange(t), time.Now())

		require.NoError(t, err)
		require.NoError(t, inv.Validate())
		assert.Equal(t, billing.InvoiceStatusPending, inv.Status())
		assert.Equal(t, "2024-03", inv.Month())
		require.NotNil(t, inv.StartDate())
		require.NotNil(t, inv.EndDate())
		assert.InDelta(t, 1250.75, inv.Amount(), 1e-9)
	})

	t.Run("non_positive_amount_rejected", func(t *testing.T) {
		_, err := billing.NewInvoiceForRange(kernel.NewUUID(), ownersSubject(t), 0, marchRange(t), time.Now())
		require.ErrorIs(t, err, errs.ErrValidation)

		_, err = billing.NewInvoiceForRange(kernel.NewUUID(), ownersSubject(t), -10, marchRange(t), time.Now())
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestNewInvoiceForMonth(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		subject, err := billing.SubjectForAgent(kernel.NewUUID())
		require.NoError(t, err)

		inv, err := billing.NewInvoiceForMonth(kernel.NewUUID(), subject, 500, "2024-04", time.Now())

		require.NoError(t, err)
		assert.Equal(t, "2024-04", inv.Month())
		assert.Nil(t, inv.StartDate())
		assert.Nil(t, inv.EndDate())
	})

	t.Run("bad_month_label_rejected", func(t *testing.T) {
		subject, err := billing.SubjectForAgent(kernel.NewUUID())
		require.NoError(t, err)

		_, err = billing.NewInvoiceForMonth(kernel.NewUUID(), subject, 500, "April 2024", time.Now())
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestInvoice_MarkPaid(t *testing.T) {
	t.Run("pending_to_paid_with_mode", func(t *testing.T) {
		inv, err := billing.NewInvoiceForRange(kernel.NewUUID(), ownersSubject(t), 100, marchRange(t), time.Now())
		require.NoError(t, err)

		require.NoError(t, inv.MarkPaid(billing.PaymentModeUPI))

		assert.Equal(t, billing.InvoiceStatusPaid, inv.Status())
		assert.Equal(t, billing.PaymentModeUPI, inv.PaymentMode())
	})

	t.Run("invalid_mode_rejected", func(t *testing.T) {
		inv, err := billing.NewInvoiceForRange(kernel.NewUUID(), ownersSubject(t), 100, marchRange(t), time.Now())
		require.NoError(t, err)

		require.ErrorIs(t, inv.MarkPaid(billing.PaymentMode("Cheque")), errs.ErrValidation)
		assert.Equal(t, billing.InvoiceStatusPending, inv.Status())
	})

	t.Run("terminal_invoice_immutable", func(t *testing.T) {
		inv, err := billing.NewInvoiceForRange(kernel.NewUUID(), ownersSubject(t), 100, marchRange(t), time.Now())
		require.NoError(t, err)
		require.NoError(t, inv.Reject())

		require.ErrorIs(t, inv.MarkPaid(billing.PaymentModeCash), errs.ErrConflict)
		assert.Equal(t, billing.InvoiceStatusRejected, inv.Status())
	})
}

func TestInvoice_Reject(t *testing.T) {
	inv, err := billing.NewInvoiceForRange(kernel.NewUUID(), ownersSubject(t), 100, marchRange(t), time.Now())
	require.NoError(t, err)

	require.NoError(t, inv.Reject())
	assert.Equal(t, billing.InvoiceStatusRejected, inv.Status())

	// Already resolved: both transitions now conflict.
	require.ErrorIs(t, inv.Reject(), errs.ErrConflict)
}

func TestInvoiceStatusFromString(t *testing.T) {
	s, err := billing.InvoiceStatusFromString("Paid")
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusPaid, s)
	assert.True(t, s.IsTerminal())

	_, err = billing.InvoiceStatusFromString("Settled")
	require.Error(t, err)
}
