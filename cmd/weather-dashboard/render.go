package main

import (
	"fmt"
	"io"
	"strings"

	"weather-dashboard/internal/dashboard"
	"weather-dashboard/internal/models"
)

const (
	updatedLayout  = "2006-01-02 15:04 MST"
	forecastLayout = "Mon 02 Jan"
)

func render(out io.Writer, state dashboard.State) {
	if state.Weather == nil {
		fmt.Fprintln(out, "No weather data.")
		return
	}

	w := state.Weather
	current := dashboard.Display(w.Condition)

	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s\n", w.City, w.Country)
	fmt.Fprintf(&b, "  %.1f°C  %s", w.Temperature, current.Label)
	if w.Description != "" {
		fmt.Fprintf(&b, " (%s)", w.Description)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Feels like %.1f°C  Humidity %d%%  Wind %.1f km/h  Visibility %.1f km\n",
		w.FeelsLike, w.Humidity, w.WindSpeed, w.Visibility)
	if w.Pressure != nil {
		fmt.Fprintf(&b, "  Pressure %d hPa\n", *w.Pressure)
	}
	if t, err := w.Time(); err == nil {
		fmt.Fprintf(&b, "  Updated %s\n", t.UTC().Format(updatedLayout))
	}

	if len(state.Forecast) > 0 {
		b.WriteString("Forecast\n")
		for _, day := range state.Forecast {
			fmt.Fprintf(&b, "  %-10s  %5.1f / %5.1f  %s\n", forecastLabel(day), day.High, day.Low, dashboard.Display(day.Condition).Label)
		}
	}

	_, _ = io.WriteString(out, b.String())
}

func forecastLabel(day models.ForecastDay) string {
	if t, err := day.ParsedDate(); err == nil {
		return t.Format(forecastLayout)
	}
	if day.Day != "" {
		return day.Day
	}
	return day.Date
}
