package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/dashboard"
	"weather-dashboard/internal/models"
)

const (
	defaultCitiesLimit = 5
	maxCitiesLimit     = 10
)

// SearchRequest is the body of a search call
type SearchRequest struct {
	City    string `json:"city" example:"Paris"`
	Country string `json:"country,omitempty" example:"FR"`
}

// StateResponse is the dashboard state plus render hints
type StateResponse struct {
	dashboard.State
	Display         *dashboard.DisplayAttributes  `json:"display,omitempty"`
	ForecastDisplay []dashboard.DisplayAttributes `json:"forecastDisplay"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"city is required"`
}

func newStateResponse(state dashboard.State) StateResponse {
	resp := StateResponse{
		State:           state,
		ForecastDisplay: make([]dashboard.DisplayAttributes, len(state.Forecast)),
	}
	if state.Weather != nil {
		attrs := dashboard.Display(state.Weather.Condition)
		resp.Display = &attrs
	}
	for i, day := range state.Forecast {
		resp.ForecastDisplay[i] = dashboard.Display(day.Condition)
	}
	return resp
}

// handleSearch godoc
// @Summary Search a city
// @Description Starts a weather search for a city. The previous result stays visible while the search is loading.
// @Description With wait=true the call blocks until the search settles.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body SearchRequest false "City to search"
// @Param city query string false "City to search, used when no body is sent" example(Paris)
// @Param wait query boolean false "Block until the search settles"
// @Success 200 {object} StateResponse "Search settled"
// @Success 202 {object} StateResponse "Search started"
// @Failure 400 {object} ErrorResponse "Bad request - missing city"
// @Failure 409 {object} ErrorResponse "A newer search replaced this one"
// @Failure 502 {object} ErrorResponse "Weather backend failed"
// @Router /api/v1/search [post]
func (r *routes) handleSearch(c *fiber.Ctx) error {
	var req SearchRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Invalid request body",
			})
		}
	}
	if strings.TrimSpace(req.City) == "" {
		req.City = c.Query("city")
	}
	if req.Country == "" {
		req.Country = c.Query("country")
	}

	if !c.QueryBool("wait", false) {
		if err := r.controller.SearchAsync(r.ctx, req.City, req.Country); err != nil {
			return r.searchError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(newStateResponse(r.controller.State()))
	}

	if err := r.controller.SearchCountry(c.UserContext(), req.City, req.Country); err != nil {
		return r.searchError(c, err)
	}
	return c.JSON(newStateResponse(r.controller.State()))
}

func (r *routes) searchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, dashboard.ErrEmptyCity):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, dashboard.ErrSuperseded):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: dashboard.ErrorMessage(err)})
	}
}

// handleState godoc
// @Summary Get dashboard state
// @Description Returns the displayed weather, forecast, loading flag and display attributes per condition.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} StateResponse "Current state"
// @Router /api/v1/state [get]
func (r *routes) handleState(c *fiber.Ctx) error {
	return c.JSON(newStateResponse(r.controller.State()))
}

// handleCities godoc
// @Summary Search cities
// @Description Autocomplete for city names, proxied to the weather backend.
// @Tags Cities
// @Produce json
// @Param query query string true "Partial city name" example(Par)
// @Param limit query integer false "Maximum results (1-10, default: 5)" minimum(1) maximum(10)
// @Success 200 {array} models.CitySearchResult "Matching cities"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 502 {object} ErrorResponse "Weather backend failed"
// @Router /api/v1/cities [get]
func (r *routes) handleCities(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: query",
		})
	}

	limit := defaultCitiesLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxCitiesLimit {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Limit must be between 1 and 10",
			})
		}
		limit = n
	}

	cities, err := r.cities.SearchCities(c.UserContext(), query, limit)
	if err != nil {
		r.l.Warning("city search failed", map[string]any{
			"query": query,
			"err":   err.Error(),
		})
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: err.Error()})
	}
	if cities == nil {
		cities = []models.CitySearchResult{}
	}

	return c.JSON(cities)
}

// handleNotifications godoc
// @Summary List notifications
// @Description Recent search notifications, newest first.
// @Tags Dashboard
// @Produce json
// @Success 200 {array} notify.Notification "Recent notifications"
// @Router /api/v1/notifications [get]
func (r *routes) handleNotifications(c *fiber.Ctx) error {
	return c.JSON(r.feed.List())
}
