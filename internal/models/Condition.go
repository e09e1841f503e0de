package models

import (
	"encoding/json"
	"strings"
)

// Condition is the normalized weather condition code.
type Condition string

const (
	ConditionClear   Condition = "clear"
	ConditionClouds  Condition = "clouds"
	ConditionRain    Condition = "rain"
	ConditionDrizzle Condition = "drizzle"
	ConditionSnow    Condition = "snow"
	ConditionOther   Condition = "other"
)

var conditionAliases = map[string]Condition{
	"clear":   ConditionClear,
	"sunny":   ConditionClear,
	"clouds":  ConditionClouds,
	"cloudy":  ConditionClouds,
	"rain":    ConditionRain,
	"drizzle": ConditionDrizzle,
	"snow":    ConditionSnow,
}

// ParseCondition maps provider text to a Condition. Unknown text maps to
// ConditionOther.
func ParseCondition(s string) Condition {
	if c, ok := conditionAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c
	}
	return ConditionOther
}

func (c *Condition) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = ParseCondition(s)
	return nil
}
