package models

import (
	"fmt"
	"time"
)

// WeatherData is a snapshot of current conditions for one city.
type WeatherData struct {
	City        string    `json:"city" example:"Paris"`
	Country     string    `json:"country" example:"FR"`
	Temperature float64   `json:"temperature" example:"18"`
	Condition   Condition `json:"condition" example:"clear"`
	Description string    `json:"description" example:"clear sky"`
	Humidity    int       `json:"humidity" example:"62"`
	WindSpeed   float64   `json:"windSpeed" example:"11"`
	Visibility  float64   `json:"visibility" example:"10"`
	FeelsLike   float64   `json:"feelsLike" example:"17"`
	Pressure    *int      `json:"pressure,omitempty" example:"1016"`
	Sunrise     *int64    `json:"sunrise,omitempty" example:"1753416000"`
	Sunset      *int64    `json:"sunset,omitempty" example:"1753470000"`
	Timestamp   string    `json:"timestamp" example:"2025-07-25T14:00:00Z"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Time parses Timestamp. The backend may omit the zone offset, in which case
// the instant is taken as UTC.
func (w WeatherData) Time() (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, w.Timestamp); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", w.Timestamp)
}

// WeatherAndForecast pairs current conditions with the forecast fetched for
// the same query.
type WeatherAndForecast struct {
	Current  WeatherData   `json:"current"`
	Forecast []ForecastDay `json:"forecast"`
}
