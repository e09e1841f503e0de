package models

import "time"

const DateLayout = "2006-01-02"

// ForecastDay is one entry of a daily forecast. High >= Low is expected
// but not enforced.
type ForecastDay struct {
	Date        string    `json:"date" example:"2025-07-25"`
	Day         string    `json:"day" example:"Today"`
	High        float64   `json:"high" example:"24"`
	Low         float64   `json:"low" example:"14"`
	Condition   Condition `json:"condition" example:"clouds"`
	Description string    `json:"description" example:"scattered clouds"`
}

func (f ForecastDay) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, f.Date)
}
