package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/dto"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/service"
)

// ProfileTranslator turns a client profile into search parameters.
type ProfileTranslator interface {
	Translate(ctx context.Context, profile dto.ClientProfile) (dto.DerivedSearchParams, error)
}

// ClientProfileHandler accepts client-meeting profiles and returns derived search parameters.
type ClientProfileHandler struct {
	translator ProfileTranslator
}

// NewClientProfileHandler wires the handler.
func NewClientProfileHandler(translator ProfileTranslator) *ClientProfileHandler {
	return &ClientProfileHandler{translator: translator}
}

// Create handles POST /client_profile.
func (h *ClientProfileHandler) Create(c echo.Context) error {
	var profile dto.ClientProfile
	if err := c.Bind(&profile); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	params, err := h.translator.Translate(c.Request().Context(), profile)
	if err != nil {
		return ServiceError(c, err)
	}
	return Success(c, http.StatusOK, params)
}

var _ ProfileTranslator = (*service.ProfileService)(nil)
