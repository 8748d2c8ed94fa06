package types

import "time"

// SourceAttribution is the percentage breakdown of pollution by presumed origin
type SourceAttribution struct {
	Vehicular  float64 `json:"vehicular"`
	Industrial float64 `json:"industrial"`
	Biomass    float64 `json:"biomass"`
	Background float64 `json:"background"`
}

// ConfidenceInterval bounds a predicted AQI value
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"level"`
}

// CurrentAQI is the full current-conditions payload for one location
type CurrentAQI struct {
	Location    Location                       `json:"location"`
	Timestamp   time.Time                      `json:"timestamp"`
	AQI         int                            `json:"aqi"`
	Category    string                         `json:"category"`
	Color       string                         `json:"color"`
	Dominant    Pollutant                      `json:"dominant_pollutant"`
	Pollutants  map[Pollutant]PollutantReading `json:"pollutants"`
	Weather     WeatherSnapshot                `json:"weather"`
	Attribution SourceAttribution              `json:"source_attribution"`
	Confidence  ConfidenceInterval             `json:"confidence"`
}
