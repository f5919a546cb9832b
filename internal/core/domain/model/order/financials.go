package order

// Financials holds the monetary figures derived from an order's line items,
// cost inputs, and agent rate snapshot. Values are computed by
// services.DeriveFinancials and stored on the order; they are never accepted
// from clients as independent truth.
type Financials struct {
	// TotalPaid is the customer-facing revenue: sum of line item prices plus
	// any extra amount the customer paid toward courier charges.
	TotalPaid float64

	// Profit is TotalPaid minus direct costs (product costs, courier fee,
	// packing). Agent commission is deliberately not subtracted here; it is
	// paid out of the business share downstream.
	Profit float64

	// CommissionPct is the snapshot of the agent rate in effect when the
	// order was saved. Changing the agent's default later does not change it.
	CommissionPct float64

	// CommissionAmount is Profit * CommissionPct / 100, or 0 without an agent.
	CommissionAmount float64
}
