// Package aqi maps numeric AQI values to the US EPA categories used for
// display. The backend sends category and color alongside the value; this
// mapping is the client-side source of truth and must agree with it.
package aqi

import "fmt"

// Category represents an AQI severity band
type Category int

const (
	Good Category = iota
	Moderate
	UnhealthySensitive
	Unhealthy
	VeryUnhealthy
	Hazardous
)

// band holds the inclusive value range and display attributes of a category
type band struct {
	lower int
	upper int
	label string
	color string
}

var bands = map[Category]band{
	Good:               {0, 50, "Good", "#00e400"},
	Moderate:           {51, 100, "Moderate", "#ffff00"},
	UnhealthySensitive: {101, 150, "Unhealthy for Sensitive Groups", "#ff7e00"},
	Unhealthy:          {151, 200, "Unhealthy", "#ff0000"},
	VeryUnhealthy:      {201, 300, "Very Unhealthy", "#8f3f97"},
	Hazardous:          {301, 500, "Hazardous", "#7e0023"},
}

// CategoryForValue returns the category for a numeric AQI value.
// Values above 500 clamp to Hazardous; negative values are an error.
func CategoryForValue(value int) (Category, error) {
	if value < 0 {
		return Good, fmt.Errorf("aqi value must be non-negative, got %d", value)
	}
	for _, c := range []Category{Good, Moderate, UnhealthySensitive, Unhealthy, VeryUnhealthy, Hazardous} {
		if value <= bands[c].upper {
			return c, nil
		}
	}
	return Hazardous, nil
}

// Label returns the display label for the category
func (c Category) Label() string {
	return bands[c].label
}

// Color returns the display hex color for the category
func (c Category) Color() string {
	return bands[c].color
}

// Bounds returns the inclusive AQI value range of the category
func (c Category) Bounds() (lower, upper int) {
	b := bands[c]
	return b.lower, b.upper
}

// ParseCategory resolves a backend category label to its Category.
// Returns an error for labels outside the enumerated set.
func ParseCategory(label string) (Category, error) {
	for c, b := range bands {
		if b.label == label {
			return c, nil
		}
	}
	return Good, fmt.Errorf("unknown aqi category %q", label)
}
