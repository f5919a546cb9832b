package commands

import (
	"context"
	"errors"
	"strconv"
	"time"

	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/order"
	"shipledger/internal/core/domain/services"
	"shipledger/internal/pkg/errs"
)

// maxSlipAttempts bounds the retry loop when two writers race for the same
// auto-generated slip number.
const maxSlipAttempts = 3

// CreateOrderCommandHandler handles the business logic for recording a new
// shipment order: role checks, linkage rules, slip numbering, and the
// financial derivation.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	finance    services.FinanceCalculator
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		finance:    services.NewFinanceCalculator(),
	}
}

// Handle processes the order creation command.
//
// A PARTNER actor's partner linkage is force-set to their own profile; a
// STAFF actor with no agent selection is auto-linked to their own agent
// profile. When no slip number is supplied the next free number is issued,
// retrying the whole transaction a bounded number of times if a concurrent
// writer claims it first.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.CanMutateOrders() {
		return errs.NewAuthorizationError("create order")
	}
	// An unlinked PARTNER login would store the order with no partner
	// linkage and then never see it again through its own scope.
	if actor.Role() == access.RolePartner && actor.PartnerID() == nil {
		return errs.NewAuthorizationError("create order without a linked partner profile")
	}

	autoSlip := cmd.Params().SlipNo == ""
	var lastErr error
	for attempt := 0; attempt < maxSlipAttempts; attempt++ {
		lastErr = h.createOnce(ctx, cmd)
		if autoSlip && errors.Is(lastErr, errs.ErrConflict) {
			continue
		}
		return lastErr
	}
	return lastErr
}

func (h *CreateOrderCommandHandler) createOnce(ctx context.Context, cmd CreateOrderCommand) error {
	actor := cmd.Actor()
	params := cmd.Params()
	agentID, partnerID := actor.ResolveOrderLinkage(params.AgentID, params.PartnerID)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ratePct := params.CommissionPct
	if agentID != nil && ratePct == nil {
		agent, err := uow.SalesAgentRepository().Get(ctx, *agentID)
		if err != nil {
			return err
		}
		rate := agent.Rate()
		ratePct = &rate
	}
	if agentID == nil {
		ratePct = nil
	}

	financials := h.finance.Derive(params.LineItems, params.Costs, ratePct)

	orderRepo := uow.OrderRepository()

	trackingID := params.TrackingID
	if trackingID == "" {
		trackingID = order.NewTemporaryTrackingID(time.Now())
	}

	slipNo := params.SlipNo
	if slipNo == "" {
		maxSlip, err := orderRepo.GetMaxSlipNo(ctx)
		if err != nil {
			return err
		}
		slipNo = strconv.Itoa(maxSlip + 1)
	}

	aggregate, err := order.NewOrder(
		params.OrderID,
		trackingID,
		slipNo,
		params.Date,
		params.Customer,
		params.LineItems,
		params.Costs,
		agentID,
		partnerID,
		actor.UserID(),
		order.StatusPending,
		financials,
	)
	if err != nil {
		return err
	}

	if params.Status != order.StatusPending {
		if err = aggregate.ChangeStatus(params.Status); err != nil {
			return err
		}
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
