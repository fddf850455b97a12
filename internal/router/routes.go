package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/config"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/handler"
	middlewarepkg "github.com/lakshyaag/restaurant-recommender-mvp/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Restaurants   *handler.RestaurantsHandler
	ClientProfile *handler.ClientProfileHandler
}

// Register wires all HTTP routes for the API under cfg.APIPrefix.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	api := e.Group(cfg.APIPrefix)

	api.GET("/health", handler.Health)
	api.GET("/restaurants", handlers.Restaurants.Search)
	api.POST("/client_profile", handlers.ClientProfile.Create, middlewarepkg.RateLimiter(cfg.RateLimit))
}
