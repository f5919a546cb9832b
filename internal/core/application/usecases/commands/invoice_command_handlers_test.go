package commands_test

import (
	"testing"
	"time"

	"shipledger/internal/core/application/usecases/commands"
	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testRange(t *testing.T) kernel.DateRange {
	t.Helper()
	r, err := kernel.NewDateRange(
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return r
}

func pendingPartnerInvoice(t *testing.T, partnerID kernel.UUID) *billing.Invoice {
	t.Helper()
	subject, err := billing.SubjectForPartner(partnerID)
	require.NoError(t, err)
	inv, err := billing.NewInvoiceForRange(kernel.NewUUID(), subject, 500, testRange(t), time.Now())
	require.NoError(t, err)
	return inv
}

func TestGenerateInvoiceCommandHandler_Handle(t *testing.T) {
	ownersSubject, err := billing.SubjectForRecipient(billing.RecipientOwners)
	require.NoError(t, err)

	t.Run("super_admin_generates_internal", func(t *testing.T) {
		ctx := t.Context()
		actor := testActor(t, access.RoleSuperAdmin, nil, nil)
		cmd, cmdErr := commands.NewGenerateInvoiceCommand(actor, kernel.NewUUID(), ownersSubject, 1000, testRange(t))
		require.NoError(t, cmdErr)

		repo := new(MockInvoiceRepository)
		uow := new(MockInvoiceUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("InvoiceRepository").Return(repo).Once(),
			repo.On("Add", mock.Anything, mock.AnythingOfType("*billing.Invoice")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockInvoiceUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewGenerateInvoiceCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("admin_cannot_generate_internal", func(t *testing.T) {
		ctx := t.Context()
		actor := testActor(t, access.RoleAdmin, nil, nil)
		cmd, cmdErr := commands.NewGenerateInvoiceCommand(actor, kernel.NewUUID(), ownersSubject, 1000, testRange(t))
		require.NoError(t, cmdErr)

		factory := new(MockInvoiceUoWFactory)
		h := commands.NewGenerateInvoiceCommandHandler(factory)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAuthorization)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("admin_generates_partner_invoice", func(t *testing.T) {
		ctx := t.Context()
		actor := testActor(t, access.RoleAdmin, nil, nil)
		subject, subErr := billing.SubjectForPartner(kernel.NewUUID())
		require.NoError(t, subErr)
		cmd, cmdErr := commands.NewGenerateInvoiceCommand(actor, kernel.NewUUID(), subject, 250, testRange(t))
		require.NoError(t, cmdErr)

		repo := new(MockInvoiceRepository)
		uow := new(MockInvoiceUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("InvoiceRepository").Return(repo).Once(),
			repo.On("Add", mock.Anything, mock.AnythingOfType("*billing.Invoice")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockInvoiceUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewGenerateInvoiceCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
	})

	t.Run("non_positive_amount_rejected_at_construction", func(t *testing.T) {
		actor := testActor(t, access.RoleSuperAdmin, nil, nil)
		_, cmdErr := commands.NewGenerateInvoiceCommand(actor, kernel.NewUUID(), ownersSubject, 0, testRange(t))
		require.ErrorIs(t, cmdErr, errs.ErrValidation)
	})
}

func TestSelfFileInvoiceCommandHandler_Handle(t *testing.T) {
	t.Run("partner_files_own_invoice", func(t *testing.T) {
		ctx := t.Context()
		partnerID := kernel.NewUUID()
		actor := testActor(t, access.RolePartner, &partnerID, nil)
		cmd, err := commands.NewSelfFileInvoiceCommand(actor, kernel.NewUUID(), 750, "2024-03")
		require.NoError(t, err)

		repo := new(MockInvoiceRepository)
		uow := new(MockInvoiceUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("InvoiceRepository").Return(repo).Once(),
			repo.On("Add", mock.Anything, mock.AnythingOfType("*billing.Invoice")).Run(func(args mock.Arguments) {
				filed := args.Get(1).(*billing.Invoice)
				require.Equal(t, billing.SubjectPartner, filed.Subject().Kind())
				require.True(t, filed.Subject().EntityID().IsEqual(partnerID))
			}).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockInvoiceUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSelfFileInvoiceCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("staff_without_agent_profile_refused", func(t *testing.T) {
		ctx := t.Context()
		actor := testActor(t, access.RoleStaff, nil, nil)
		cmd, err := commands.NewSelfFileInvoiceCommand(actor, kernel.NewUUID(), 100, "2024-03")
		require.NoError(t, err)

		factory := new(MockInvoiceUoWFactory)
		h := commands.NewSelfFileInvoiceCommandHandler(factory)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAuthorization)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("admin_cannot_self_file", func(t *testing.T) {
		ctx := t.Context()
		actor := testActor(t, access.RoleAdmin, nil, nil)
		cmd, err := commands.NewSelfFileInvoiceCommand(actor, kernel.NewUUID(), 100, "2024-03")
		require.NoError(t, err)

		factory := new(MockInvoiceUoWFactory)
		h := commands.NewSelfFileInvoiceCommandHandler(factory)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAuthorization)
	})
}

func TestAcceptAndPayInvoiceCommandHandler_Handle(t *testing.T) {
	t.Run("subject_settles_own_invoice", func(t *testing.T) {
		ctx := t.Context()
		partnerID := kernel.NewUUID()
		actor := testActor(t, access.RolePartner, &partnerID, nil)
		invoice := pendingPartnerInvoice(t, partnerID)
		cmd, err := commands.NewAcceptAndPayInvoiceCommand(actor, invoice.ID(), billing.PaymentModeUPI)
		require.NoError(t, err)

		repo := new(MockInvoiceRepository)
		uow := new(MockInvoiceUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("InvoiceRepository").Return(repo).Once(),
			repo.On("Get", ctx, invoice.ID()).Return(invoice, nil).Once(),
			repo.On("SetStatusIfPending", ctx, invoice.ID(), billing.InvoiceStatusPaid, billing.PaymentModeUPI).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockInvoiceUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAcceptAndPayInvoiceCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("foreign_subject_refused", func(t *testing.T) {
		ctx := t.Context()
		ownPartner := kernel.NewUUID()
		actor := testActor(t, access.RolePartner, &ownPartner, nil)
		invoice := pendingPartnerInvoice(t, kernel.NewUUID())
		cmd, err := commands.NewAcceptAndPayInvoiceCommand(actor, invoice.ID(), billing.PaymentModeCash)
		require.NoError(t, err)

		repo := new(MockInvoiceRepository)
		uow := new(MockInvoiceUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("InvoiceRepository").Return(repo).Once(),
			repo.On("Get", ctx, invoice.ID()).Return(invoice, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockInvoiceUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAcceptAndPayInvoiceCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAuthorization)
		repo.AssertNotCalled(t, "SetStatusIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent_resolution_conflict", func(t *testing.T) {
		ctx := t.Context()
		partnerID := kernel.NewUUID()
		actor := testActor(t, access.RolePartner, &partnerID, nil)
		invoice := pendingPartnerInvoice(t, partnerID)
		cmd, err := commands.NewAcceptAndPayInvoiceCommand(actor, invoice.ID(), billing.PaymentModeCash)
		require.NoError(t, err)

		conflict := errs.NewConflictError("invoiceId", invoice.ID())

		repo := new(MockInvoiceRepository)
		uow := new(MockInvoiceUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("InvoiceRepository").Return(repo).Once(),
			repo.On("Get", ctx, invoice.ID()).Return(invoice, nil).Once(),
			repo.On("SetStatusIfPending", ctx, invoice.ID(), billing.InvoiceStatusPaid, billing.PaymentModeCash).Return(conflict).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockInvoiceUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAcceptAndPayInvoiceCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)
	})
}

func TestSetInvoiceStatusCommandHandler_Handle(t *testing.T) {
	t.Run("admin_rejects_invoice", func(t *testing.T) {
		ctx := t.Context()
		actor := testActor(t, access.RoleAdmin, nil, nil)
		invoice := pendingPartnerInvoice(t, kernel.NewUUID())
		cmd, err := commands.NewSetInvoiceStatusCommand(actor, invoice.ID(), billing.InvoiceStatusRejected, "")
		require.NoError(t, err)

		repo := new(MockInvoiceRepository)
		uow := new(MockInvoiceUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("InvoiceRepository").Return(repo).Once(),
			repo.On("Get", ctx, invoice.ID()).Return(invoice, nil).Once(),
			repo.On("SetStatusIfPending", ctx, invoice.ID(), billing.InvoiceStatusRejected, billing.PaymentMode("")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockInvoiceUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSetInvoiceStatusCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("staff_forbidden", func(t *testing.T) {
		ctx := t.Context()
		actor := testActor(t, access.RoleStaff, nil, nil)
		cmd, err := commands.NewSetInvoiceStatusCommand(actor, kernel.NewUUID(), billing.InvoiceStatusRejected, "")
		require.NoError(t, err)

		factory := new(MockInvoiceUoWFactory)
		h := commands.NewSetInvoiceStatusCommandHandler(factory)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAuthorization)
	})

	t.Run("pending_target_rejected_at_construction", func(t *testing.T) {
		actor := testActor(t, access.RoleAdmin, nil, nil)
		_, err := commands.NewSetInvoiceStatusCommand(actor, kernel.NewUUID(), billing.InvoiceStatusPending, "")
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("paid_requires_payment_mode", func(t *testing.T) {
		actor := testActor(t, access.RoleAdmin, nil, nil)
		_, err := commands.NewSetInvoiceStatusCommand(actor, kernel.NewUUID(), billing.InvoiceStatusPaid, "")
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}
