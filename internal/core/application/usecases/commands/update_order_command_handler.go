package commands

import (
	"context"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/services"
	"shipledger/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles the business logic for patching an
// order: ownership re-check, merge of the patch over the stored record,
// selective re-derivation of the financial figures, and the status
// transition guard against the merged record.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	finance    services.FinanceCalculator
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		finance:    services.NewFinanceCalculator(),
	}
}

// Handle processes the order patch command.
//
// An order outside the actor's scope reports as not found, so an actor
// cannot probe for orders it may not see. Financial figures are re-derived
// only when the patch touches line items, costs, or agent linkage; a
// status-only patch preserves them verbatim.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.CanMutateOrders() {
		return errs.NewAuthorizationError("update order")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !actor.OrderScope().Matches(aggregate) {
		return errs.NewNotFoundError("orderId", cmd.OrderID())
	}

	params := cmd.Params()

	trackingID := aggregate.TrackingID()
	if params.TrackingID != nil {
		trackingID = *params.TrackingID
	}
	slipNo := aggregate.SlipNo()
	if params.SlipNo != nil {
		slipNo = *params.SlipNo
	}
	date := aggregate.Date()
	if params.Date != nil {
		date = *params.Date
	}
	customer := aggregate.Customer()
	if params.Customer != nil {
		customer = *params.Customer
	}
	if err = aggregate.UpdateDetails(trackingID, slipNo, date, customer); err != nil {
		return err
	}

	agentID := aggregate.AgentID()
	if params.AgentIDSet {
		agentID = params.AgentID
	}
	partnerID := aggregate.PartnerID()
	if params.PartnerIDSet {
		partnerID = params.PartnerID
	}
	if actor.Role() == access.RolePartner {
		partnerID = actor.PartnerID()
	}

	if params.TouchesFinancials() {
		lineItems := aggregate.LineItems()
		if params.LineItemsSet {
			lineItems = params.LineItems
		}
		costs := aggregate.Costs()
		if params.Costs != nil {
			costs = *params.Costs
		}

		var ratePct *float64
		switch {
		case agentID == nil:
			ratePct = nil
		case params.CommissionPct != nil:
			ratePct = params.CommissionPct
		case params.AgentIDSet:
			agent, agentErr := uow.SalesAgentRepository().Get(ctx, *agentID)
			if agentErr != nil {
				return agentErr
			}
			rate := agent.Rate()
			ratePct = &rate
		default:
			rate := aggregate.Financials().CommissionPct
			ratePct = &rate
		}

		financials := h.finance.Derive(lineItems, costs, ratePct)
		if err = aggregate.ReplaceFinancialInputs(lineItems, costs, agentID, partnerID, financials); err != nil {
			return err
		}
	} else if params.PartnerIDSet || actor.Role() == access.RolePartner {
		if err = aggregate.ReplaceFinancialInputs(
			aggregate.LineItems(), aggregate.Costs(), agentID, partnerID, aggregate.Financials(),
		); err != nil {
			return err
		}
	}

	if params.Status != nil && *params.Status != aggregate.Status() {
		if err = aggregate.ChangeStatus(*params.Status); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
