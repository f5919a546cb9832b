// Package services provides domain services that implement business logic
// spanning the order ledger and the billing side.
//
// The package includes:
//   - FinanceCalculator: derives an order's financial figures from its raw
//     monetary inputs (pure, idempotent).
//   - BillingCalculator: aggregates derived figures over a date range into
//     the invoiced amount for a billing subject, with an audit explanation.
//
// Both services are stateless; callers pass all inputs explicitly.
package services
