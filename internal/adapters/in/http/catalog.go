package http

import (
	"net/http"

	"shipledger/internal/core/application/usecases/commands"
	"shipledger/internal/core/application/usecases/queries"
	"shipledger/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type catalogEntryPayload struct {
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	UserID string  `json:"userId"`
}

type catalogEntryResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	UserID string  `json:"userId,omitempty"`
}

// ListPartners handles GET /api/v1/partners.
func (s *Server) ListPartners(ctx echo.Context) error {
	query, err := queries.NewListPartnersQuery(currentActor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.listPartnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]catalogEntryResponse, 0, len(views))
	for _, view := range views {
		response = append(response, catalogEntryResponse{
			ID:     view.ID.String(),
			Name:   view.Name,
			Rate:   view.Rate,
			UserID: optionalIDString(view.UserID),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreatePartner handles POST /api/v1/partners.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var req catalogEntryPayload
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := optionalIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(currentActor(ctx), partnerID, req.Name, req.Rate, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": partnerID.String()})
}

// UpdatePartner handles PUT /api/v1/partners/:id.
func (s *Server) UpdatePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	var req catalogEntryPayload
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePartnerCommand(currentActor(ctx), partnerID, req.Name, req.Rate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updatePartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeletePartner handles DELETE /api/v1/partners/:id.
func (s *Server) DeletePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	cmd, err := commands.NewDeletePartnerCommand(currentActor(ctx), partnerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deletePartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListSalesAgents handles GET /api/v1/agents.
func (s *Server) ListSalesAgents(ctx echo.Context) error {
	query, err := queries.NewListSalesAgentsQuery(currentActor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.listSalesAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]catalogEntryResponse, 0, len(views))
	for _, view := range views {
		response = append(response, catalogEntryResponse{
			ID:     view.ID.String(),
			Name:   view.Name,
			Rate:   view.Rate,
			UserID: optionalIDString(view.UserID),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateSalesAgent handles POST /api/v1/agents.
func (s *Server) CreateSalesAgent(ctx echo.Context) error {
	var req catalogEntryPayload
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := optionalIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewCreateSalesAgentCommand(currentActor(ctx), agentID, req.Name, req.Rate, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createSalesAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": agentID.String()})
}

// UpdateSalesAgent handles PUT /api/v1/agents/:id.
func (s *Server) UpdateSalesAgent(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	var req catalogEntryPayload
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateSalesAgentCommand(currentActor(ctx), agentID, req.Name, req.Rate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateSalesAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteSalesAgent handles DELETE /api/v1/agents/:id.
func (s *Server) DeleteSalesAgent(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	cmd, err := commands.NewDeleteSalesAgentCommand(currentActor(ctx), agentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteSalesAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
