package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-dashboard/docs"
	"weather-dashboard/internal/dashboard"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/notify"
	"weather-dashboard/pkg/observe"
)

// CitySearcher backs the city autocomplete endpoint.
type CitySearcher interface {
	SearchCities(ctx context.Context, query string, limit int) ([]models.CitySearchResult, error)
}

type routes struct {
	// ctx outlives single requests; background searches run under it.
	ctx        context.Context
	controller *dashboard.Controller
	cities     CitySearcher
	feed       *notify.Feed
	l          *observe.Logger
}

func NewRouter(
	ctx context.Context,
	app *fiber.App,
	controller *dashboard.Controller,
	cities CitySearcher,
	feed *notify.Feed,
	l *observe.Logger,
) {
	r := &routes{
		ctx:        ctx,
		controller: controller,
		cities:     cities,
		feed:       feed,
		l:          l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	api := app.Group("/api/v1")
	api.Post("/search", r.handleSearch)
	api.Get("/state", r.handleState)
	api.Get("/cities", r.handleCities)
	api.Get("/notifications", r.handleNotifications)
}
