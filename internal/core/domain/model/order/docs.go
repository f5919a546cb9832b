// Package order provides the Order aggregate: one courier shipment/sale
// transaction with its line items, cost inputs, entity links, shipment
// status, and the financial figures derived from them.
//
// Key business rules:
//   - Derived financials (totalPaid, profit, commission) are recomputed from
//     line items + cost inputs + the agent rate snapshot on every write that
//     touches those inputs; a status-only or text-only update preserves them.
//   - An order may carry a temporary placeholder tracking code until the real
//     one arrives; moving into Packed, Sent, or Shipped requires a real
//     tracking code and a linked partner, checked against the merged record.
//   - Line items are owned by their order and replaced wholesale on update.
package order
