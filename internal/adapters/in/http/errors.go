package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// writeError maps a domain error to a status code and writes the error body.
// Internal failures are reported without their message to avoid leaking
// storage details.
func writeError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// parseID parses the :id path parameter into a UUID.
// The ok result is false when a 400 response has already been written.
func parseID(ctx echo.Context) (kernel.UUID, bool, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, false, writeBadRequest(ctx, "invalid id: must be a UUID")
	}
	return id, true, nil
}
