package http

import (
	"net/http"
	"time"

	"shipledger/internal/core/application/usecases/commands"
	"shipledger/internal/core/application/usecases/queries"
	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createUserPayload struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	VisibleFields string `json:"visibleFields"`
}

type updateUserPayload struct {
	Password      *string `json:"password"`
	Role          *string `json:"role"`
	VisibleFields *string `json:"visibleFields"`
}

type userResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Role          string `json:"role"`
	VisibleFields string `json:"visibleFields"`
	CreatedAt     string `json:"createdAt"`
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(ctx echo.Context) error {
	query, err := queries.NewListUsersQuery(currentActor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.listUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]userResponse, 0, len(views))
	for _, view := range views {
		response = append(response, userResponse{
			ID:            view.ID.String(),
			Username:      view.Username,
			Role:          view.Role,
			VisibleFields: view.VisibleFields,
			CreatedAt:     view.CreatedAt.Format(time.RFC3339),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req createUserPayload
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := access.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(currentActor(ctx), userID,
		req.Username, req.Password, role, req.VisibleFields)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": userID.String()})
}

// UpdateUser handles PUT /api/v1/users/:id.
func (s *Server) UpdateUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	var req updateUserPayload
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	params := commands.UpdateUserParams{
		Password:      req.Password,
		VisibleFields: req.VisibleFields,
	}
	if req.Role != nil {
		role, roleErr := access.RoleFromString(*req.Role)
		if roleErr != nil {
			return writeError(ctx, roleErr)
		}
		params.Role = &role
	}

	cmd, err := commands.NewUpdateUserCommand(currentActor(ctx), userID, params)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	cmd, err := commands.NewDeleteUserCommand(currentActor(ctx), userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
