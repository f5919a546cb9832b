package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"
)

// TempTrackingPrefix marks a placeholder tracking code assigned when an order
// is entered before the real airway bill number is known.
const TempTrackingPrefix = "TEMP-"

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// NewTemporaryTrackingID generates a placeholder tracking code for orders
// entered before the real code is available.
func NewTemporaryTrackingID(now time.Time) string {
	return fmt.Sprintf("%s%d", TempTrackingPrefix, now.UnixMilli())
}

// Customer groups the customer-facing contact fields of an order.
type Customer struct {
	Name    string
	Phone   string
	Address string
	Pincode string
}

// Costs groups the raw monetary inputs of an order that feed the financial
// derivation alongside the line items.
type Costs struct {
	// CourierPaidExtra is the amount the customer paid on top of product
	// prices toward courier charges (revenue side).
	CourierPaidExtra float64

	// CourierCostExpense is the fee owed to the shipping partner (expense
	// side, and simultaneously the partner's income).
	CourierCostExpense float64

	// PackingCostExpense is the packaging expense for the shipment.
	PackingCostExpense float64
}

// Order is the aggregate root for one shipment/sale transaction. It owns its
// line items, links optionally to one Partner and one SalesAgent, and carries
// the financial figures derived from its inputs.
//
// Invariants:
//   - Must have a valid identifier, tracking code, slip number, and creator
//   - Status is always one of the defined states
//   - Derived financials match the current items/costs/rate snapshot, except
//     after a targeted partial update that deliberately leaves them untouched
//   - Entering a shipping status requires a real tracking code and a partner
type Order struct {
	id          kernel.UUID
	trackingID  string
	slipNo      string
	date        time.Time
	customer    Customer
	lineItems   []LineItem
	costs       Costs
	agentID     *kernel.UUID
	partnerID   *kernel.UUID
	enteredByID kernel.UUID
	status      Status
	financials  Financials

	isConstructed bool
}

// NewOrder creates a validated Order in the given status. financials must be
// the output of the derivation engine for exactly these items, costs, and
// rate snapshot; the aggregate stores them as-is.
func NewOrder(
	id kernel.UUID,
	trackingID string,
	slipNo string,
	date time.Time,
	customer Customer,
	lineItems []LineItem,
	costs Costs,
	agentID *kernel.UUID,
	partnerID *kernel.UUID,
	enteredByID kernel.UUID,
	status Status,
	financials Financials,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingID(trackingID),
		o.setSlipNo(slipNo),
		o.setDate(date),
		o.setLineItems(lineItems),
		o.setAgentID(agentID),
		o.setPartnerID(partnerID),
		o.setEnteredByID(enteredByID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.customer = customer
	o.costs = costs
	o.financials = financials
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
func RestoreOrder(
	id kernel.UUID,
	trackingID string,
	slipNo string,
	date time.Time,
	customer Customer,
	lineItems []LineItem,
	costs Costs,
	agentID *kernel.UUID,
	partnerID *kernel.UUID,
	enteredByID kernel.UUID,
	status Status,
	financials Financials,
) (*Order, error) {
	return NewOrder(id, trackingID, slipNo, date, customer, lineItems, costs,
		agentID, partnerID, enteredByID, status, financials)
}

// Validate ensures the Order was created via its constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// TrackingID returns the human tracking code (possibly a placeholder).
func (o *Order) TrackingID() string { return o.trackingID }

// SlipNo returns the sequential slip number.
func (o *Order) SlipNo() string { return o.slipNo }

// Date returns the order's business date.
func (o *Order) Date() time.Time { return o.date }

// Customer returns the customer contact fields.
func (o *Order) Customer() Customer { return o.customer }

// LineItems returns the order's products. The returned slice must not be mutated.
func (o *Order) LineItems() []LineItem { return o.lineItems }

// Costs returns the raw cost/payment inputs.
func (o *Order) Costs() Costs { return o.costs }

// AgentID returns the linked sales agent, or nil.
func (o *Order) AgentID() *kernel.UUID { return o.agentID }

// PartnerID returns the linked shipping partner, or nil.
func (o *Order) PartnerID() *kernel.UUID { return o.partnerID }

// EnteredByID returns the login identity that created the order.
func (o *Order) EnteredByID() kernel.UUID { return o.enteredByID }

// Status returns the current shipment status.
func (o *Order) Status() Status { return o.status }

// Financials returns the derived monetary figures.
func (o *Order) Financials() Financials { return o.financials }

// IsTemporaryTracking reports whether the tracking code is still the
// auto-assigned placeholder.
func (o *Order) IsTemporaryTracking() bool {
	return strings.HasPrefix(o.trackingID, TempTrackingPrefix)
}

// UpdateDetails revises the identifying and contact fields of the order.
// It does not touch line items, costs, or derived financials.
func (o *Order) UpdateDetails(trackingID, slipNo string, date time.Time, customer Customer) error {
	if err := errors.Join(
		o.setTrackingID(trackingID),
		o.setSlipNo(slipNo),
		o.setDate(date),
	); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

// ReplaceFinancialInputs replaces the line items, cost inputs, and entity
// links together with the financials freshly derived from them. This is the
// only path that changes derived figures after construction.
func (o *Order) ReplaceFinancialInputs(
	lineItems []LineItem,
	costs Costs,
	agentID *kernel.UUID,
	partnerID *kernel.UUID,
	financials Financials,
) error {
	if err := errors.Join(
		o.setLineItems(lineItems),
		o.setAgentID(agentID),
		o.setPartnerID(partnerID),
	); err != nil {
		return err
	}
	o.costs = costs
	o.financials = financials
	return nil
}

// ChangeStatus moves the order into newStatus. Transitions into shipping
// states are guarded: the order (after any merged edits) must carry a real
// tracking code and a linked partner. Derived financials are preserved.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if newStatus.RequiresShippableOrder() {
		if o.IsTemporaryTracking() {
			return errs.NewValidationError("Real Tracking ID is required to change status")
		}
		if o.partnerID == nil {
			return errs.NewValidationError("Courier Service (Partner) is required")
		}
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingID(trackingID string) error {
	if trackingID == "" {
		return errs.NewValidationError("tracking code is required")
	}
	o.trackingID = trackingID
	return nil
}

func (o *Order) setSlipNo(slipNo string) error {
	if slipNo == "" {
		return errs.NewValidationError("slip number is required")
	}
	o.slipNo = slipNo
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValidationError("order date is required")
	}
	o.date = date
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = lineItems
	return nil
}

func (o *Order) setAgentID(agentID *kernel.UUID) error {
	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return err
		}
	}
	o.agentID = agentID
	return nil
}

func (o *Order) setPartnerID(partnerID *kernel.UUID) error {
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return err
		}
	}
	o.partnerID = partnerID
	return nil
}

func (o *Order) setEnteredByID(enteredByID kernel.UUID) error {
	if err := enteredByID.Validate(); err != nil {
		return err
	}
	o.enteredByID = enteredByID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
