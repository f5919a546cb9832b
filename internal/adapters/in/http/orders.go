package http

import (
	"net/http"
	"time"

	"shipledger/internal/core/application/usecases/commands"
	"shipledger/internal/core/application/usecases/queries"
	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

type lineItemPayload struct {
	Name  string  `json:"name"`
	Cost  float64 `json:"cost"`
	Price float64 `json:"price"`
}

type orderPayload struct {
	TrackingID         string            `json:"trackingId"`
	SlipNo             string            `json:"slipNo"`
	Date               string            `json:"date"`
	CustomerName       string            `json:"customerName"`
	Phone              string            `json:"phone"`
	Address            string            `json:"address"`
	Pincode            string            `json:"pincode"`
	Items              []lineItemPayload `json:"items"`
	CourierPaidExtra   float64           `json:"courierPaidExtra"`
	CourierCostExpense float64           `json:"courierCostExpense"`
	PackingCostExpense float64           `json:"packingCostExpense"`
	AgentID            string            `json:"agentId"`
	PartnerID          string            `json:"partnerId"`
	CommissionPct      *float64          `json:"commissionPct"`
	Status             string            `json:"status"`
}

// parseOrderDate accepts both plain dates and RFC 3339 timestamps.
func parseOrderDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func parseLineItems(payloads []lineItemPayload) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(payloads))
	for _, p := range payloads {
		item, err := order.NewLineItem(p.Name, p.Cost, p.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req orderPayload
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	date, ok := parseOrderDate(req.Date)
	if !ok {
		return badRequest(ctx, "Invalid order date")
	}

	items, err := parseLineItems(req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	agentID, err := optionalIDFromString(req.AgentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}
	partnerID, err := optionalIDFromString(req.PartnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	status := order.StatusUnknown
	if req.Status != "" {
		if status, err = order.StatusFromString(req.Status); err != nil {
			return writeError(ctx, err)
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(currentActor(ctx), commands.CreateOrderParams{
		OrderID:    orderID,
		TrackingID: req.TrackingID,
		SlipNo:     req.SlipNo,
		Date:       date,
		Customer: order.Customer{
			Name:    req.CustomerName,
			Phone:   req.Phone,
			Address: req.Address,
			Pincode: req.Pincode,
		},
		LineItems: items,
		Costs: order.Costs{
			CourierPaidExtra:   req.CourierPaidExtra,
			CourierCostExpense: req.CourierCostExpense,
			PackingCostExpense: req.PackingCostExpense,
		},
		AgentID:       agentID,
		PartnerID:     partnerID,
		CommissionPct: req.CommissionPct,
		Status:        status,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

type updateOrderPayload struct {
	TrackingID   *string           `json:"trackingId"`
	SlipNo       *string           `json:"slipNo"`
	Date         *string           `json:"date"`
	CustomerName *string           `json:"customerName"`
	Phone        *string           `json:"phone"`
	Address      *string           `json:"address"`
	Pincode      *string           `json:"pincode"`
	Items        []lineItemPayload `json:"items"`

	CourierPaidExtra   *float64 `json:"courierPaidExtra"`
	CourierCostExpense *float64 `json:"courierCostExpense"`
	PackingCostExpense *float64 `json:"packingCostExpense"`

	AgentID       *string  `json:"agentId"`
	PartnerID     *string  `json:"partnerId"`
	CommissionPct *float64 `json:"commissionPct"`
	Status        *string  `json:"status"`
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req updateOrderPayload
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	params := commands.UpdateOrderParams{
		TrackingID:    req.TrackingID,
		SlipNo:        req.SlipNo,
		CommissionPct: req.CommissionPct,
	}

	if req.Date != nil {
		date, ok := parseOrderDate(*req.Date)
		if !ok {
			return badRequest(ctx, "Invalid order date")
		}
		params.Date = &date
	}

	if req.CustomerName != nil || req.Phone != nil || req.Address != nil || req.Pincode != nil {
		customer := order.Customer{}
		if req.CustomerName != nil {
			customer.Name = *req.CustomerName
		}
		if req.Phone != nil {
			customer.Phone = *req.Phone
		}
		if req.Address != nil {
			customer.Address = *req.Address
		}
		if req.Pincode != nil {
			customer.Pincode = *req.Pincode
		}
		params.Customer = &customer
	}

	if req.Items != nil {
		items, itemsErr := parseLineItems(req.Items)
		if itemsErr != nil {
			return writeError(ctx, itemsErr)
		}
		params.LineItems = items
		params.LineItemsSet = true
	}

	if req.CourierPaidExtra != nil || req.CourierCostExpense != nil || req.PackingCostExpense != nil {
		costs := order.Costs{}
		if req.CourierPaidExtra != nil {
			costs.CourierPaidExtra = *req.CourierPaidExtra
		}
		if req.CourierCostExpense != nil {
			costs.CourierCostExpense = *req.CourierCostExpense
		}
		if req.PackingCostExpense != nil {
			costs.PackingCostExpense = *req.PackingCostExpense
		}
		params.Costs = &costs
	}

	if req.AgentID != nil {
		agentID, idErr := optionalIDFromString(*req.AgentID)
		if idErr != nil {
			return badRequest(ctx, "Invalid agent id")
		}
		params.AgentID = agentID
		params.AgentIDSet = true
	}
	if req.PartnerID != nil {
		partnerID, idErr := optionalIDFromString(*req.PartnerID)
		if idErr != nil {
			return badRequest(ctx, "Invalid partner id")
		}
		params.PartnerID = partnerID
		params.PartnerIDSet = true
	}

	if req.Status != nil {
		status, statusErr := order.StatusFromString(*req.Status)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		params.Status = &status
	}

	cmd, err := commands.NewUpdateOrderCommand(currentActor(ctx), orderID, params)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(currentActor(ctx), orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/orders. The response projects every order
// through the actor's visible field set; restricted logins simply never see
// the hidden keys.
func (s *Server) ListOrders(ctx echo.Context) error {
	period, err := parsePeriod(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid date range")
	}

	query, err := queries.NewListOrdersQuery(currentActor(ctx), ctx.QueryParam("search"), period)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	fields := currentActor(ctx).VisibleFields()
	response := make([]map[string]any, 0, len(views))
	for _, view := range views {
		response = append(response, projectOrder(view, fields))
	}
	return ctx.JSON(http.StatusOK, response)
}

// projectOrder renders an order view as a JSON object containing only the
// fields the actor may see.
func projectOrder(view queries.OrderView, fields access.FieldSet) map[string]any {
	items := make([]lineItemPayload, 0, len(view.LineItems))
	for _, li := range view.LineItems {
		items = append(items, lineItemPayload{Name: li.Name, Cost: li.Cost, Price: li.Price})
	}

	full := map[string]any{
		"id":                 view.ID.String(),
		"trackingId":         view.TrackingID,
		"slipNo":             view.SlipNo,
		"date":               view.Date.Format(dateLayout),
		"customerName":       view.Customer,
		"phone":              view.Phone,
		"address":            view.Address,
		"pincode":            view.Pincode,
		"items":              items,
		"courierPaidExtra":   view.CourierPaidExtra,
		"courierCostExpense": view.CourierCostExpense,
		"packingCostExpense": view.PackingCostExpense,
		"agentId":            optionalIDString(view.AgentID),
		"agentName":          view.AgentName,
		"partnerId":          optionalIDString(view.PartnerID),
		"partnerName":        view.PartnerName,
		"enteredBy":          view.EnteredBy,
		"status":             view.Status,
		"totalPaid":          view.TotalPaid,
		"profit":             view.Profit,
		"commissionPct":      view.CommissionPct,
		"commissionAmount":   view.CommissionAmount,
	}

	if fields.IsUnrestricted() {
		return full
	}

	projected := make(map[string]any, len(full))
	for name, value := range full {
		if name == "id" || fields.Allows(name) {
			projected[name] = value
		}
	}
	return projected
}

func optionalIDString(id *kernel.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// parsePeriod reads the optional from/to query parameters.
func parsePeriod(ctx echo.Context) (*kernel.DateRange, error) {
	from := ctx.QueryParam("from")
	to := ctx.QueryParam("to")
	if from == "" && to == "" {
		return nil, nil
	}

	start, ok := parseOrderDate(from)
	if !ok {
		return nil, kernel.ErrDateRangeIsNotConstructed
	}
	end, ok := parseOrderDate(to)
	if !ok {
		return nil, kernel.ErrDateRangeIsNotConstructed
	}

	period, err := kernel.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	period, err := parsePeriod(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid date range")
	}

	query, err := queries.NewGetStatsQuery(currentActor(ctx), period)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	series := make([]map[string]any, 0, len(view.DailySeries))
	for _, day := range view.DailySeries {
		series = append(series, map[string]any{
			"day":        day.Day.Format(dateLayout),
			"orderCount": day.OrderCount,
			"amount":     day.Amount,
		})
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"orderCount":       view.OrderCount,
		"profitOrEarnings": view.ProfitOrEarnings,
		"salesTotal":       view.SalesTotal,
		"todayCount":       view.TodayCount,
		"activeCount":      view.ActiveCount,
		"dailySeries":      series,
	})
}

// GetProductSuggestions handles GET /api/v1/products/suggestions.
func (s *Server) GetProductSuggestions(ctx echo.Context) error {
	query, err := queries.NewGetProductSuggestionsQuery(currentActor(ctx), ctx.QueryParam("prefix"))
	if err != nil {
		return writeError(ctx, err)
	}

	suggestions, err := s.getProductSuggestionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]lineItemPayload, 0, len(suggestions))
	for _, sg := range suggestions {
		response = append(response, lineItemPayload{Name: sg.Name, Cost: sg.Cost, Price: sg.Price})
	}
	return ctx.JSON(http.StatusOK, response)
}
