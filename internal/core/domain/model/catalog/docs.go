// Package catalog provides the entity records referenced by orders: shipping
// Partners (paid a courier fee per shipment) and SalesAgents (earning a
// commission on profit). Both may optionally be linked one-to-one to a login
// identity, which is how partner and staff users are scoped to their own data.
//
// Rates held here are defaults: an order snapshots the agent's rate at save
// time, so changing a default never rewrites past orders.
package catalog
