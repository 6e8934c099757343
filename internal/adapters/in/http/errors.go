package http

import (
	"errors"
	"net/http"

	"foodorders/internal/core/domain/services"
	"foodorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var orderNotFound = []services.Violation{{Field: "id", Code: services.CodeOrderNotFound}}

// fail writes the response for err:
//   - a rejection is 422, or 404 when the order does not exist
//   - an unreachable store is 503 and may be retried
//   - invalid input is 400
func (s *Server) fail(c echo.Context, err error) error {
	var rejection *services.Rejection
	if errors.As(err, &rejection) {
		status := http.StatusUnprocessableEntity
		if rejection.Has(services.CodeOrderNotFound) {
			status = http.StatusNotFound
		}
		return c.JSON(status, Rejected{Errors: toViolationItems(rejection.Violations)})
	}

	switch {
	case errors.Is(err, errs.ErrStoreUnavailable):
		s.logger.WarnContext(c.Request().Context(), "store unavailable", "error", err)
		c.Response().Header().Set("Retry-After", "1")
		return c.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "The order store is unavailable, retry later",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, Rejected{Errors: toViolationItems(orderNotFound)})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return c.JSON(httpErr.Code, Error{
			Code:    httpErr.Code,
			Message: http.StatusText(httpErr.Code),
		})
	}

	s.logger.ErrorContext(c.Request().Context(), "request failed", "error", err)
	return c.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
