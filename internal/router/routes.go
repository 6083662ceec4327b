package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Toylycker/Travel-Agency/internal/config"
	"github.com/Toylycker/Travel-Agency/internal/handler"
	middlewarepkg "github.com/Toylycker/Travel-Agency/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Health  *handler.HealthHandler
	Places  *handler.PlacesHandler
	Blog    *handler.BlogHandler
	Hotels  *handler.HotelsHandler
	Tours   *handler.ToursHandler
	Contact *handler.ContactHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", handlers.Health.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/places", handlers.Places.List)
	e.GET("/places/count", handlers.Places.Count)
	e.GET("/places/:id", handlers.Places.Show)

	e.GET("/blog", handlers.Blog.List)
	e.GET("/blog/count", handlers.Blog.Count)
	e.GET("/blog/:id", handlers.Blog.Show)

	e.GET("/hotels", handlers.Hotels.List)
	e.GET("/hotels/count", handlers.Hotels.Count)

	e.GET("/tours", handlers.Tours.List)
	e.GET("/tours/:id", handlers.Tours.Show)

	e.POST("/contact", handlers.Contact.Submit, middlewarepkg.RateLimiter("/contact", cfg.RateLimitContact))
}
