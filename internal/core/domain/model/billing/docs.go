// Package billing provides the Invoice aggregate and its billing Subject.
//
// An invoice always has exactly one billing subject: a fixed internal
// business-share recipient, a shipping partner, or a sales agent. Invoices
// are created Pending and move exactly once to Paid or Rejected; terminal
// invoices are immutable. The amount on an invoice is computed by the
// billing calculator (services package) and frozen at generation time.
package billing
