package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Toylycker/Travel-Agency/internal/service"
	"github.com/Toylycker/Travel-Agency/internal/validation"
)

// APIResponse describes the standard envelope returned by the API.
type APIResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	payload := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	return c.JSON(status, payload)
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	payload := APIResponse{
		Status:  "error",
		Message: message,
	}
	return c.JSON(status, payload)
}

// ValidationFailed sends a 422 with one message per invalid field.
func ValidationFailed(c echo.Context, verr *validation.Error) error {
	return c.JSON(http.StatusUnprocessableEntity, APIResponse{
		Status:  "error",
		Message: "validation failed",
		Errors:  verr.Fields,
	})
}

// respondError maps service errors onto HTTP responses. Unexpected errors are
// logged and answered with fallback so store details never reach the client.
func respondError(c echo.Context, err error, fallback string) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return ValidationFailed(c, verr)
	}
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return Error(c, http.StatusNotFound, nf.Error())
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg(fallback)
	return Error(c, http.StatusInternalServerError, fallback)
}
