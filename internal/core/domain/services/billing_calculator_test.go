package services_test

import (
	"testing"
	"time"

	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"
	"shipledger/internal/core/domain/services"
	"shipledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func internalSubject(t *testing.T, r billing.Recipient) billing.Subject {
	t.Helper()
	s, err := billing.SubjectForRecipient(r)
	require.NoError(t, err)
	return s
}

func TestBillingCalculator_Contributions(t *testing.T) {
	calc := services.NewBillingCalculator()

	t.Run("delivered_order_uses_stored_figures", func(t *testing.T) {
		f := services.OrderFigures{Status: order.StatusDelivered, Profit: 45, TotalPaid: 230, CourierCostExpense: 30}

		assert.InDelta(t, 45.0, calc.ProfitContribution(f), 1e-9)
		assert.InDelta(t, 230.0, calc.SalesContribution(f), 1e-9)
	})

	t.Run("returned_order_is_a_pure_loss", func(t *testing.T) {
		f := services.OrderFigures{Status: order.StatusReturned, Profit: 45, TotalPaid: 230, CourierCostExpense: 80}

		assert.InDelta(t, -80.0, calc.ProfitContribution(f), 1e-9)
		assert.Zero(t, calc.SalesContribution(f))
	})
}

func TestFiguresFromOrder(t *testing.T) {
	partnerID := kernel.NewUUID()
	item, err := order.NewLineItem("Saree", 100, 150)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "AWB1", "1", time.Now(), order.Customer{Name: "Asha"},
		[]order.LineItem{item}, order.Costs{CourierCostExpense: 30},
		nil, &partnerID, kernel.NewUUID(), order.StatusReturned,
		order.Financials{TotalPaid: 150, Profit: 20, CommissionAmount: 2},
	)
	require.NoError(t, err)

	f := services.FiguresFromOrder(o)

	assert.Equal(t, order.StatusReturned, f.Status)
	assert.InDelta(t, 30.0, f.CourierCostExpense, 1e-9)
	require.NotNil(t, f.PartnerID)
	assert.True(t, f.PartnerID.IsEqual(partnerID))
}

func TestBillingCalculator_ComputeAmount(t *testing.T) {
	calc := services.NewBillingCalculator()

	t.Run("owners_share", func(t *testing.T) {
		figures := []services.OrderFigures{
			{Status: order.StatusDelivered, Profit: 100, TotalPaid: 300},
			{Status: order.StatusDelivered, Profit: 50, TotalPaid: 200},
		}

		got, err := calc.ComputeAmount(internalSubject(t, billing.RecipientOwners), figures)

		require.NoError(t, err)
		assert.InDelta(t, 75.0, got.Amount, 1e-9)
		assert.Equal(t, 2, got.OrderCount)
		assert.Contains(t, got.Explanation, "50% of profit")
	})

	t.Run("operations_share_nets_out_commissions", func(t *testing.T) {
		figures := []services.OrderFigures{
			{Status: order.StatusDelivered, Profit: 100, CommissionAmount: 10},
			{Status: order.StatusDelivered, Profit: 100, CommissionAmount: 10},
		}

		got, err := calc.ComputeAmount(internalSubject(t, billing.RecipientOperations), figures)

		require.NoError(t, err)
		assert.InDelta(t, 80.0, got.Amount, 1e-9)
	})

	t.Run("negative_amount_preserved", func(t *testing.T) {
		figures := []services.OrderFigures{
			{Status: order.StatusDelivered, Profit: 10, CommissionAmount: 50},
		}

		got, err := calc.ComputeAmount(internalSubject(t, billing.RecipientOperations), figures)

		require.NoError(t, err)
		assert.InDelta(t, -45.0, got.Amount, 1e-9)
	})

	t.Run("returned_order_reduces_profit_share", func(t *testing.T) {
		figures := []services.OrderFigures{
			{Status: order.StatusReturned, Profit: 45, CourierCostExpense: 80},
		}

		got, err := calc.ComputeAmount(internalSubject(t, billing.RecipientOwners), figures)

		require.NoError(t, err)
		assert.InDelta(t, -40.0, got.Amount, 1e-9)
	})

	t.Run("partner_fee_includes_returned_orders", func(t *testing.T) {
		partnerID := kernel.NewUUID()
		otherID := kernel.NewUUID()
		figures := []services.OrderFigures{
			{Status: order.StatusDelivered, CourierCostExpense: 40, PartnerID: &partnerID},
			{Status: order.StatusReturned, CourierCostExpense: 80, PartnerID: &partnerID},
			{Status: order.StatusDelivered, CourierCostExpense: 25, PartnerID: &otherID},
		}

		subject, err := billing.SubjectForPartner(partnerID)
		require.NoError(t, err)

		got, err := calc.ComputeAmount(subject, figures)

		require.NoError(t, err)
		assert.InDelta(t, 120.0, got.Amount, 1e-9)
		assert.Equal(t, 2, got.OrderCount)
	})

	t.Run("agent_commissions", func(t *testing.T) {
		agentID := kernel.NewUUID()
		figures := []services.OrderFigures{
			{Status: order.StatusDelivered, CommissionAmount: 12.5, AgentID: &agentID},
			{Status: order.StatusDelivered, CommissionAmount: 7.5, AgentID: &agentID},
			{Status: order.StatusDelivered, CommissionAmount: 99},
		}

		subject, err := billing.SubjectForAgent(agentID)
		require.NoError(t, err)

		got, err := calc.ComputeAmount(subject, figures)

		require.NoError(t, err)
		assert.InDelta(t, 20.0, got.Amount, 1e-9)
		assert.Equal(t, 2, got.OrderCount)
	})

	t.Run("no_orders_yields_zero", func(t *testing.T) {
		got, err := calc.ComputeAmount(internalSubject(t, billing.RecipientOwners), nil)

		require.NoError(t, err)
		assert.Zero(t, got.Amount)
		assert.Zero(t, got.OrderCount)
	})

	t.Run("unconstructed_subject_rejected", func(t *testing.T) {
		_, err := calc.ComputeAmount(billing.Subject{}, nil)
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}
