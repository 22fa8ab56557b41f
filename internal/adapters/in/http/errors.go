// Package http provides the echo-based transport layer. Handlers bind JSON,
// build commands or queries, and map domain errors onto HTTP statuses; no
// business rules live here.
package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFromError maps the domain error taxonomy to HTTP statuses. Anything
// unrecognized is an internal error and its text never reaches the client.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrCartIsEmpty),
		errors.Is(err, services.ErrMixedShopCart),
		errors.Is(err, services.ErrItemNotAvailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body for a failed use case call.
func respondError(ctx echo.Context, err error) error {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		return ctx.JSON(status, ErrorResponse{Error: "internal error"})
	}
	return ctx.JSON(status, ErrorResponse{Error: err.Error()})
}

// respondBadRequest is for bind and command construction failures: the
// request never reached a use case, so the status is always 400.
func respondBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
