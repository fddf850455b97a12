package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/service"
)

// ErrorResponse describes the envelope returned for failed requests.
type ErrorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// Success writes data as the response body.
func Success(c echo.Context, status int, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, data)
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{Status: "error", Detail: message})
}

// ServiceError maps the service error taxonomy onto HTTP statuses.
func ServiceError(c echo.Context, err error) error {
	var validation service.ValidationError
	if errors.As(err, &validation) {
		return Error(c, http.StatusBadRequest, validation.Message)
	}

	var upstream *service.UpstreamError
	if errors.As(err, &upstream) {
		return Error(c, http.StatusInternalServerError, upstream.Error())
	}

	var schema *service.SchemaError
	if errors.As(err, &schema) {
		return Error(c, http.StatusInternalServerError, schema.Error())
	}

	return Error(c, http.StatusInternalServerError, "internal server error")
}
