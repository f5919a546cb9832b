package commands_test

import (
	"testing"
	"time"

	"shipledger/internal/core/application/usecases/commands"
	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/catalog"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"
	"shipledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role access.Role, partnerID, agentID *kernel.UUID) access.Actor {
	t.Helper()
	actor, err := access.NewActor(kernel.NewUUID(), "tester", role, access.UnrestrictedFieldSet(), partnerID, agentID)
	require.NoError(t, err)
	return actor
}

func testLineItems(t *testing.T) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem("Saree", 100, 150)
	require.NoError(t, err)
	return []order.LineItem{item}
}

func testCreateOrderParams(t *testing.T) commands.CreateOrderParams {
	t.Helper()
	return commands.CreateOrderParams{
		OrderID:   kernel.NewUUID(),
		Date:      time.Now(),
		Customer:  order.Customer{Name: "Asha", Phone: "9876543210"},
		LineItems: testLineItems(t),
		Costs:     order.Costs{CourierCostExpense: 30},
	}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, access.RoleAdmin, nil, nil)
	cmd, err := commands.NewCreateOrderCommand(actor, testCreateOrderParams(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetMaxSlipNo", ctx).Return(41, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
			created := args.Get(1).(*order.Order)
			assert.Equal(t, "42", created.SlipNo())
			assert.True(t, created.IsTemporaryTracking())
			assert.InDelta(t, 150.0, created.Financials().TotalPaid, 1e-9)
			assert.InDelta(t, 20.0, created.Financials().Profit, 1e-9)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ViewerForbidden(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, access.RoleViewer, nil, nil)
	cmd, err := commands.NewCreateOrderCommand(actor, testCreateOrderParams(t))
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAuthorization)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_UnlinkedPartnerForbidden(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, access.RolePartner, nil, nil)
	cmd, err := commands.NewCreateOrderCommand(actor, testCreateOrderParams(t))
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrAuthorization)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_PartnerLinkForced(t *testing.T) {
	ctx := t.Context()
	ownPartner := kernel.NewUUID()
	foreignPartner := kernel.NewUUID()
	actor := testActor(t, access.RolePartner, &ownPartner, nil)

	params := testCreateOrderParams(t)
	params.PartnerID = &foreignPartner
	cmd, err := commands.NewCreateOrderCommand(actor, params)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetMaxSlipNo", ctx).Return(0, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
			created := args.Get(1).(*order.Order)
			require.NotNil(t, created.PartnerID())
			assert.True(t, created.PartnerID().IsEqual(ownPartner))
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AgentRateSnapshot(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	agent, err := catalog.NewSalesAgent(agentID, "Priya", 10, nil)
	require.NoError(t, err)

	actor := testActor(t, access.RoleAdmin, nil, nil)
	params := testCreateOrderParams(t)
	params.AgentID = &agentID
	cmd, err := commands.NewCreateOrderCommand(actor, params)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockSalesAgentRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SalesAgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", ctx, agentID).Return(agent, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetMaxSlipNo", ctx).Return(0, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
			created := args.Get(1).(*order.Order)
			assert.InDelta(t, 10.0, created.Financials().CommissionPct, 1e-9)
			assert.InDelta(t, 2.0, created.Financials().CommissionAmount, 1e-9)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	agentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_SlipConflictRetries(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, access.RoleAdmin, nil, nil)
	cmd, err := commands.NewCreateOrderCommand(actor, testCreateOrderParams(t))
	require.NoError(t, err)

	conflict := errs.NewConflictError("slipNo", "42")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Times(2)
	uow.On("OrderRepository").Return(repo).Times(2)
	uow.On("Rollback", ctx).Return(nil).Times(2)
	uow.On("Commit", ctx).Return(nil).Once()
	repo.On("GetMaxSlipNo", ctx).Return(41, nil).Once()
	repo.On("GetMaxSlipNo", ctx).Return(42, nil).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(conflict).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ExplicitSlipConflictNotRetried(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, access.RoleAdmin, nil, nil)
	params := testCreateOrderParams(t)
	params.SlipNo = "7"
	params.TrackingID = "AWB900"
	cmd, err := commands.NewCreateOrderCommand(actor, params)
	require.NoError(t, err)

	conflict := errs.NewConflictError("trackingId", "AWB900")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	actor := testActor(t, access.RoleAdmin, nil, nil)

	t.Run("missing_customer_name", func(t *testing.T) {
		params := testCreateOrderParams(t)
		params.Customer.Name = ""
		_, err := commands.NewCreateOrderCommand(actor, params)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("no_line_items", func(t *testing.T) {
		params := testCreateOrderParams(t)
		params.LineItems = nil
		_, err := commands.NewCreateOrderCommand(actor, params)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("not_constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.Error(t, cmd.Validate())
	})
}
