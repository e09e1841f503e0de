package dashboard

import "weather-dashboard/internal/models"

// DisplayAttributes tell a renderer how to draw a condition.
type DisplayAttributes struct {
	Icon  string `json:"icon" example:"sun"`
	Color string `json:"color" example:"yellow"`
	Label string `json:"label" example:"Clear"`
}

var conditionDisplay = map[models.Condition]DisplayAttributes{
	models.ConditionClear:   {Icon: "sun", Color: "yellow", Label: "Clear"},
	models.ConditionClouds:  {Icon: "cloud", Color: "gray", Label: "Cloudy"},
	models.ConditionRain:    {Icon: "cloud-rain", Color: "blue", Label: "Rain"},
	models.ConditionDrizzle: {Icon: "cloud-rain", Color: "blue", Label: "Drizzle"},
	models.ConditionSnow:    {Icon: "cloud-snow", Color: "light-blue", Label: "Snow"},
}

var defaultDisplay = DisplayAttributes{Icon: "sun", Color: "yellow", Label: "Unknown"}

// Display returns the attributes for c. Unrecognized conditions get the
// default treatment.
func Display(c models.Condition) DisplayAttributes {
	if attrs, ok := conditionDisplay[c]; ok {
		return attrs
	}
	return defaultDisplay
}
