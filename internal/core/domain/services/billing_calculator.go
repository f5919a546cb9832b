package services

import (
	"fmt"

	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"
	"shipledger/internal/pkg/errs"
)

// OrderFigures is the slice of an order the billing and stats aggregations
// read: the derived money fields plus status and linkage. Read paths load
// these directly; write paths build them from the aggregate via
// FiguresFromOrder.
type OrderFigures struct {
	Status             order.Status
	TotalPaid          float64
	Profit             float64
	CommissionAmount   float64
	CourierCostExpense float64
	PartnerID          *kernel.UUID
	AgentID            *kernel.UUID
}

// FiguresFromOrder extracts the aggregation inputs from an order aggregate.
func FiguresFromOrder(o *order.Order) OrderFigures {
	return OrderFigures{
		Status:             o.Status(),
		TotalPaid:          o.Financials().TotalPaid,
		Profit:             o.Financials().Profit,
		CommissionAmount:   o.Financials().CommissionAmount,
		CourierCostExpense: o.Costs().CourierCostExpense,
		PartnerID:          o.PartnerID(),
		AgentID:            o.AgentID(),
	}
}

// BillingBreakdown is the result of aggregating order figures for one
// billing subject. Explanation is a human-readable formula for audit
// display; invoice approval screens must show why an amount was computed.
type BillingBreakdown struct {
	Amount      float64
	OrderCount  int
	Explanation string
}

// BillingCalculator sums derived order figures over a date range into the
// amount owed to a billing subject.
//
// Allocation rules (business constants, not configuration):
//   - Owners: 50% of profit over the range.
//   - Operations: 50% of profit minus all agent commissions over the range.
//   - Partner: the sum of courier fees on orders linked to that partner.
//   - Agent: the sum of commission amounts on orders linked to that agent.
//
// Returned orders are an intentional asymmetry: they contribute negative
// courier fee to the profit aggregates (a pure loss, the stored profit
// field is ignored), zero to sales revenue, but their full courier fee to
// the partner's income (the partner was still paid for the failed attempt).
//
// A negative result is valid and preserved; commission payouts can exceed
// the profit share.
type BillingCalculator struct{}

// NewBillingCalculator creates a new BillingCalculator instance.
func NewBillingCalculator() BillingCalculator {
	return BillingCalculator{}
}

// ProfitContribution returns the order's contribution to profit aggregates.
func (BillingCalculator) ProfitContribution(f OrderFigures) float64 {
	if f.Status == order.StatusReturned {
		return -f.CourierCostExpense
	}
	return f.Profit
}

// SalesContribution returns the order's contribution to revenue totals.
func (BillingCalculator) SalesContribution(f OrderFigures) float64 {
	if f.Status == order.StatusReturned {
		return 0
	}
	return f.TotalPaid
}

// ComputeAmount aggregates the given order figures (already filtered to the
// billed date range) into the subject's invoiced amount. Rows outside the
// subject's linkage are skipped, so passing the full range is safe. Zero
// matching rows yields amount 0, not an error.
func (c BillingCalculator) ComputeAmount(subject billing.Subject, figures []OrderFigures) (BillingBreakdown, error) {
	if err := subject.Validate(); err != nil {
		return BillingBreakdown{}, err
	}

	switch subject.Kind() {
	case billing.SubjectInternal:
		return c.computeInternal(subject.Recipient(), figures)
	case billing.SubjectPartner:
		return c.computePartner(subject.EntityID(), figures), nil
	case billing.SubjectAgent:
		return c.computeAgent(subject.EntityID(), figures), nil
	default:
		return BillingBreakdown{}, errs.NewValidationError("billing subject kind is not supported")
	}
}

func (c BillingCalculator) computeInternal(recipient billing.Recipient, figures []OrderFigures) (BillingBreakdown, error) {
	var profit, commissions float64
	for _, f := range figures {
		profit += c.ProfitContribution(f)
		commissions += f.CommissionAmount
	}

	switch recipient {
	case billing.RecipientOwners:
		amount := kernel.RoundMoney(profit * 0.5)
		return BillingBreakdown{
			Amount:      amount,
			OrderCount:  len(figures),
			Explanation: fmt.Sprintf("50%% of profit %.2f across %d orders = %.2f", profit, len(figures), amount),
		}, nil
	case billing.RecipientOperations:
		amount := kernel.RoundMoney(profit*0.5 - commissions)
		return BillingBreakdown{
			Amount:      amount,
			OrderCount:  len(figures),
			Explanation: fmt.Sprintf("50%% of profit %.2f minus commissions %.2f across %d orders = %.2f", profit, commissions, len(figures), amount),
		}, nil
	default:
		return BillingBreakdown{}, errs.NewValidationError(fmt.Sprintf("%q is not a known internal recipient", string(recipient)))
	}
}

func (c BillingCalculator) computePartner(partnerID kernel.UUID, figures []OrderFigures) BillingBreakdown {
	var fees float64
	count := 0
	for _, f := range figures {
		if f.PartnerID == nil || !f.PartnerID.IsEqual(partnerID) {
			continue
		}
		fees += f.CourierCostExpense
		count++
	}

	amount := kernel.RoundMoney(fees)
	return BillingBreakdown{
		Amount:      amount,
		OrderCount:  count,
		Explanation: fmt.Sprintf("courier fees across %d orders = %.2f", count, amount),
	}
}

func (c BillingCalculator) computeAgent(agentID kernel.UUID, figures []OrderFigures) BillingBreakdown {
	var commissions float64
	count := 0
	for _, f := range figures {
		if f.AgentID == nil || !f.AgentID.IsEqual(agentID) {
			continue
		}
		commissions += f.CommissionAmount
		count++
	}

	amount := kernel.RoundMoney(commissions)
	return BillingBreakdown{
		Amount:      amount,
		OrderCount:  count,
		Explanation: fmt.Sprintf("commissions across %d orders = %.2f", count, amount),
	}
}
