package commands

import (
	"errors"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"
	"shipledger/internal/pkg/errs"
	"shipledger/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderParams is a partial patch over an existing order. Nil fields
// keep the stored value. LineItemsSet, AgentIDSet, and PartnerIDSet
// distinguish "not sent" from "explicitly cleared", so a client can unlink
// an agent or replace the line items with an empty intent failing
// validation downstream.
type UpdateOrderParams struct {
	TrackingID *string
	SlipNo     *string
	Date       *time.Time
	Customer   *order.Customer

	LineItems    []order.LineItem
	LineItemsSet bool

	Costs *order.Costs

	AgentID    *kernel.UUID
	AgentIDSet bool

	PartnerID    *kernel.UUID
	PartnerIDSet bool

	CommissionPct *float64

	Status *order.Status
}

// TouchesFinancials reports whether the patch changes any input of the
// financial derivation. Status-only and free-text updates keep the stored
// derived figures untouched.
func (p UpdateOrderParams) TouchesFinancials() bool {
	return p.LineItemsSet || p.Costs != nil || p.AgentIDSet || p.CommissionPct != nil
}

// UpdateOrderCommand represents a request to patch an existing order on
// behalf of an actor.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   access.Actor
	orderID kernel.UUID
	params  UpdateOrderParams

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an order.
func NewUpdateOrderCommand(actor access.Actor, orderID kernel.UUID, params UpdateOrderParams) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if params.LineItemsSet && len(params.LineItems) == 0 {
		return UpdateOrderCommand{}, errs.NewValidationError("at least one product is required")
	}
	if params.Status != nil {
		if err := params.Status.Validate(); err != nil {
			return UpdateOrderCommand{}, err
		}
	}

	cmd.actor = actor
	cmd.orderID = orderID
	cmd.params = params
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c UpdateOrderCommand) Actor() access.Actor { return c.actor }

// OrderID returns the identifier of the order to patch.
func (c UpdateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Params returns the patch.
func (c UpdateOrderCommand) Params() UpdateOrderParams { return c.params }
