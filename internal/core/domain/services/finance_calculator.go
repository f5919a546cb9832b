package services

import (
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"
)

// FinanceCalculator derives an order's financial figures from its line
// items, cost inputs, and the commission rate in effect at save time.
//
// Business rules:
//   - totalPaid = sum of item prices + the extra courier charge collected
//     from the customer.
//   - profit = totalPaid minus direct costs (item costs, courier fee,
//     packing). Commission is NOT a direct cost: it is paid out of the
//     operating share downstream, so it never reduces order-level profit.
//   - commissionAmount = profit * ratePct/100 when an agent is linked,
//     else 0. The rate is a snapshot: later edits to the agent's default
//     rate never rewrite stored orders.
//   - Monetary outputs are rounded to 2 decimals on the final figure only,
//     never on intermediate sums.
//
// Derive is pure and must be re-run on every create and on every update
// touching line items, costs, or agent linkage. Updates that only change
// status or free-text fields keep the stored figures untouched.
type FinanceCalculator struct{}

// NewFinanceCalculator creates a new FinanceCalculator instance.
func NewFinanceCalculator() FinanceCalculator {
	return FinanceCalculator{}
}

// Derive computes the financial figures for the given inputs. ratePct is
// the agent commission percentage; pass nil when no agent is linked.
func (FinanceCalculator) Derive(lineItems []order.LineItem, costs order.Costs, ratePct *float64) order.Financials {
	var priceSum, costSum float64
	for _, item := range lineItems {
		priceSum += item.Price()
		costSum += item.Cost()
	}

	totalPaid := kernel.RoundMoney(priceSum + costs.CourierPaidExtra)
	directCost := costSum + costs.CourierCostExpense + costs.PackingCostExpense
	profit := kernel.RoundMoney(priceSum + costs.CourierPaidExtra - directCost)

	var commissionPct, commissionAmount float64
	if ratePct != nil {
		commissionPct = *ratePct
		commissionAmount = kernel.RoundMoney(profit * (commissionPct / 100))
	}

	return order.Financials{
		TotalPaid:        totalPaid,
		Profit:           profit,
		CommissionPct:    commissionPct,
		CommissionAmount: commissionAmount,
	}
}
