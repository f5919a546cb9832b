package http

import (
	"errors"
	"net/http"

	"shipledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Message string `json:"message"`
}

func errorBody(message string) errorResponse {
	return errorResponse{Message: message}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody(message))
}

// writeError maps domain errors onto HTTP status codes. Validation messages
// are safe to surface; everything unclassified is logged and reported as an
// opaque failure so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return ctx.JSON(http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, errs.ErrAuthorization):
		return ctx.JSON(http.StatusForbidden, errorBody("Not authorized"))
	case errors.Is(err, errs.ErrNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody("Not found"))
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, errorBody(err.Error()))
	default:
		ctx.Logger().Errorf("operation failed: %v", err)
		return ctx.JSON(http.StatusInternalServerError, errorBody("Operation failed"))
	}
}
