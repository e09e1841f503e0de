package apiclient

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"weather-dashboard/internal/models"
)

const DefaultSearchLimit = 5

func cityParams(city, countryCode string) (url.Values, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, &ProviderError{Message: "city is required"}
	}

	params := url.Values{}
	params.Set("city", city)
	if cc := strings.TrimSpace(countryCode); cc != "" {
		params.Set("country_code", cc)
	}
	return params, nil
}

// GetCurrentWeather fetches current conditions for city. countryCode is
// optional.
func (c *Client) GetCurrentWeather(ctx context.Context, city, countryCode string) (models.WeatherData, error) {
	params, err := cityParams(city, countryCode)
	if err != nil {
		return models.WeatherData{}, err
	}

	var weather models.WeatherData
	if err := c.getJSON(ctx, endpointCurrent, params, &weather); err != nil {
		return models.WeatherData{}, err
	}

	return weather, nil
}

// GetForecast fetches the daily forecast for city, in backend order.
func (c *Client) GetForecast(ctx context.Context, city, countryCode string) ([]models.ForecastDay, error) {
	params, err := cityParams(city, countryCode)
	if err != nil {
		return nil, err
	}

	var forecast []models.ForecastDay
	if err := c.getJSON(ctx, endpointForecast, params, &forecast); err != nil {
		return nil, err
	}
	if forecast == nil {
		forecast = []models.ForecastDay{}
	}

	return forecast, nil
}

// SearchCities looks up cities matching query. limit <= 0 means
// DefaultSearchLimit.
func (c *Client) SearchCities(ctx context.Context, query string, limit int) ([]models.CitySearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &ProviderError{Message: "query is required"}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))

	var cities []models.CitySearchResult
	if err := c.getJSON(ctx, endpointSearch, params, &cities); err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []models.CitySearchResult{}
	}

	return cities, nil
}

// GetWeatherAndForecast fetches current conditions and forecast
// concurrently. It fails as a whole with the first sub-call error, and the
// sibling request is canceled; a partial result is never returned.
func (c *Client) GetWeatherAndForecast(ctx context.Context, city, countryCode string) (models.WeatherAndForecast, error) {
	if _, err := cityParams(city, countryCode); err != nil {
		return models.WeatherAndForecast{}, err
	}

	var (
		current  models.WeatherData
		forecast []models.ForecastDay
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		w, err := c.GetCurrentWeather(gctx, city, countryCode)
		if err != nil {
			return err
		}
		current = w
		return nil
	})

	g.Go(func() error {
		f, err := c.GetForecast(gctx, city, countryCode)
		if err != nil {
			return err
		}
		forecast = f
		return nil
	})

	if err := g.Wait(); err != nil {
		c.l.Warning("combined fetch failed", map[string]any{
			"city": city,
			"err":  err.Error(),
		})
		return models.WeatherAndForecast{}, err
	}

	c.l.Info("combined fetch completed", map[string]any{
		"city": city,
		"days": len(forecast),
	})

	return models.WeatherAndForecast{Current: current, Forecast: forecast}, nil
}
