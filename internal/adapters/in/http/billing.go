package http

import (
	"net/http"
	"time"

	"shipledger/internal/core/application/usecases/commands"
	"shipledger/internal/core/application/usecases/queries"
	"shipledger/internal/core/domain/model/billing"
	"shipledger/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// subjectFromParams reads the billing subject from query parameters:
// subjectKind plus either recipient (internal) or entityId (partner/agent).
func subjectFromParams(ctx echo.Context) (billing.Subject, error) {
	kind, err := billing.SubjectKindFromString(ctx.QueryParam("subjectKind"))
	if err != nil {
		return billing.Subject{}, err
	}

	if kind == billing.SubjectInternal {
		return billing.SubjectForRecipient(billing.Recipient(ctx.QueryParam("recipient")))
	}

	entityID, err := kernel.UUIDFromString(ctx.QueryParam("entityId"))
	if err != nil {
		return billing.Subject{}, err
	}
	if kind == billing.SubjectPartner {
		return billing.SubjectForPartner(entityID)
	}
	return billing.SubjectForAgent(entityID)
}

type breakdownResponse struct {
	Amount      float64 `json:"amount"`
	OrderCount  int     `json:"orderCount"`
	Explanation string  `json:"explanation"`
}

// GetBillingAmount handles GET /api/v1/billing/amount.
func (s *Server) GetBillingAmount(ctx echo.Context) error {
	subject, err := subjectFromParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	period, err := parsePeriod(ctx)
	if err != nil || period == nil {
		return badRequest(ctx, "Invalid date range")
	}

	query, err := queries.NewGetBillingAmountQuery(currentActor(ctx), subject, *period)
	if err != nil {
		return writeError(ctx, err)
	}

	breakdown, err := s.getBillingAmountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, breakdownResponse{
		Amount:      breakdown.Amount,
		OrderCount:  breakdown.OrderCount,
		Explanation: breakdown.Explanation,
	})
}

type invoiceResponse struct {
	ID          string  `json:"id"`
	SubjectKind string  `json:"subjectKind"`
	Recipient   string  `json:"recipient,omitempty"`
	EntityID    string  `json:"entityId,omitempty"`
	Amount      float64 `json:"amount"`
	StartDate   string  `json:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty"`
	Month       string  `json:"month,omitempty"`
	Status      string  `json:"status"`
	PaymentMode string  `json:"paymentMode,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

func invoiceResponseFromView(view queries.InvoiceView) invoiceResponse {
	resp := invoiceResponse{
		ID:          view.ID.String(),
		SubjectKind: view.SubjectKind,
		Recipient:   view.Recipient,
		EntityID:    optionalIDString(view.EntityID),
		Amount:      view.Amount,
		Month:       view.Month,
		Status:      view.Status,
		PaymentMode: view.PaymentMode,
		CreatedAt:   view.CreatedAt.Format(time.RFC3339),
	}
	if view.StartDate != nil {
		resp.StartDate = view.StartDate.Format(dateLayout)
	}
	if view.EndDate != nil {
		resp.EndDate = view.EndDate.Format(dateLayout)
	}
	return resp
}

// GetBillingHistory handles GET /api/v1/billing/history.
func (s *Server) GetBillingHistory(ctx echo.Context) error {
	subject, err := subjectFromParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetBillingHistoryQuery(currentActor(ctx), subject)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getBillingHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	invoices := make([]invoiceResponse, 0, len(view.Invoices))
	for _, inv := range view.Invoices {
		invoices = append(invoices, invoiceResponseFromView(inv))
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"invoices":       invoices,
		"suggestedStart": view.SuggestedStart.Format(dateLayout),
	})
}

// GetPersonalBillingStats handles GET /api/v1/billing/personal.
func (s *Server) GetPersonalBillingStats(ctx echo.Context) error {
	query, err := queries.NewGetPersonalBillingStatsQuery(currentActor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getPersonalBillingStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"since": view.Since.Format(dateLayout),
		"breakdown": breakdownResponse{
			Amount:      view.Breakdown.Amount,
			OrderCount:  view.Breakdown.OrderCount,
			Explanation: view.Breakdown.Explanation,
		},
		"month": breakdownResponse{
			Amount:      view.Month.Amount,
			OrderCount:  view.Month.OrderCount,
			Explanation: view.Month.Explanation,
		},
		"lifetimeDue": view.LifetimeDue,
	})
}

// ListInvoices handles GET /api/v1/invoices.
func (s *Server) ListInvoices(ctx echo.Context) error {
	query, err := queries.NewListInvoicesQuery(currentActor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.listInvoicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]invoiceResponse, 0, len(views))
	for _, view := range views {
		response = append(response, invoiceResponseFromView(view))
	}
	return ctx.JSON(http.StatusOK, response)
}

type generateInvoicePayload struct {
	SubjectKind string  `json:"subjectKind"`
	Recipient   string  `json:"recipient"`
	EntityID    string  `json:"entityId"`
	Amount      float64 `json:"amount"`
	From        string  `json:"from"`
	To          string  `json:"to"`
}

func (p generateInvoicePayload) subject() (billing.Subject, error) {
	kind, err := billing.SubjectKindFromString(p.SubjectKind)
	if err != nil {
		return billing.Subject{}, err
	}

	if kind == billing.SubjectInternal {
		return billing.SubjectForRecipient(billing.Recipient(p.Recipient))
	}

	entityID, err := kernel.UUIDFromString(p.EntityID)
	if err != nil {
		return billing.Subject{}, err
	}
	if kind == billing.SubjectPartner {
		return billing.SubjectForPartner(entityID)
	}
	return billing.SubjectForAgent(entityID)
}

// GenerateInvoice handles POST /api/v1/invoices.
func (s *Server) GenerateInvoice(ctx echo.Context) error {
	var req generateInvoicePayload
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	subject, err := req.subject()
	if err != nil {
		return writeError(ctx, err)
	}

	start, ok := parseOrderDate(req.From)
	if !ok {
		return badRequest(ctx, "Invalid date range")
	}
	end, ok := parseOrderDate(req.To)
	if !ok {
		return badRequest(ctx, "Invalid date range")
	}
	period, err := kernel.NewDateRange(start, end)
	if err != nil {
		return writeError(ctx, err)
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewGenerateInvoiceCommand(currentActor(ctx), invoiceID, subject, req.Amount, period)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.generateInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": invoiceID.String()})
}

type selfFileInvoicePayload struct {
	Amount float64 `json:"amount"`
	Month  string  `json:"month"`
}

// SelfFileInvoice handles POST /api/v1/invoices/self.
func (s *Server) SelfFileInvoice(ctx echo.Context) error {
	var req selfFileInvoicePayload
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewSelfFileInvoiceCommand(currentActor(ctx), invoiceID, req.Amount, req.Month)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.selfFileInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": invoiceID.String()})
}

type payInvoicePayload struct {
	PaymentMode string `json:"paymentMode"`
}

// AcceptAndPayInvoice handles POST /api/v1/invoices/:id/pay.
func (s *Server) AcceptAndPayInvoice(ctx echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid invoice id")
	}

	var req payInvoicePayload
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAcceptAndPayInvoiceCommand(currentActor(ctx), invoiceID,
		billing.PaymentMode(req.PaymentMode))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.acceptAndPayInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type setInvoiceStatusPayload struct {
	Status      string `json:"status"`
	PaymentMode string `json:"paymentMode"`
}

// SetInvoiceStatus handles POST /api/v1/invoices/:id/status.
func (s *Server) SetInvoiceStatus(ctx echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid invoice id")
	}

	var req setInvoiceStatusPayload
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := billing.InvoiceStatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetInvoiceStatusCommand(currentActor(ctx), invoiceID, status,
		billing.PaymentMode(req.PaymentMode))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setInvoiceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
