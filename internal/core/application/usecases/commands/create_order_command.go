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

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderParams carries the client-supplied inputs for a new order.
// TrackingID and SlipNo may be left empty: the handler assigns a temporary
// tracking placeholder and the next free slip number. Status zero value
// defaults to Pending.
type CreateOrderParams struct {
	OrderID       kernel.UUID
	TrackingID    string
	SlipNo        string
	Date          time.Time
	Customer      order.Customer
	LineItems     []order.LineItem
	Costs         order.Costs
	AgentID       *kernel.UUID
	PartnerID     *kernel.UUID
	CommissionPct *float64
	Status        order.Status
}

// CreateOrderCommand represents a request to record a new shipment order in
// the ledger on behalf of an actor.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor  access.Actor
	params CreateOrderParams

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to record a new order. Validates
// the actor, the order identity, and that the order carries a customer name
// and at least one line item.
func NewCreateOrderCommand(actor access.Actor, params CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		params.OrderID.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if params.Customer.Name == "" {
		return CreateOrderCommand{}, errs.NewValidationError("customer name is required")
	}
	if len(params.LineItems) == 0 {
		return CreateOrderCommand{}, errs.NewValidationError("at least one product is required")
	}
	if params.Date.IsZero() {
		return CreateOrderCommand{}, errs.NewValidationError("order date is required")
	}

	if params.Status == order.StatusUnknown {
		params.Status = order.StatusPending
	}
	if err := params.Status.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.actor = actor
	cmd.params = params
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c CreateOrderCommand) Actor() access.Actor { return c.actor }

// Params returns the requested order inputs.
func (c CreateOrderCommand) Params() CreateOrderParams { return c.params }
