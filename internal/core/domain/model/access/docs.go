// Package access models who is acting and what they may see or change.
//
// An Actor is an explicit request-scoped identity carried into every core
// operation; the core never reads ambient session state. The actor's role
// resolves to an OrderScope (a predicate over orders, also translatable into
// a query filter) and a FieldSet (a projection applied after scope
// filtering, never mixed into the query predicate).
package access
