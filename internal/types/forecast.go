package types

import "time"

// ForecastRow is one hourly entry of a forecast or history series. It is the
// unit of display and export.
type ForecastRow struct {
	Timestamp time.Time             `json:"timestamp"`
	AQI       int                   `json:"aqi"`
	Category  string                `json:"category"`
	Dominant  Pollutant             `json:"dominant_pollutant"`
	Values    map[Pollutant]float64 `json:"values"`
}
