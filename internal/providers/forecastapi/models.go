package forecastapi

import (
	"time"

	"airdash/internal/aqi"
	"airdash/internal/types"
)

// CurrentAPIResponse mirrors GET /api/v1/forecast/current/{location}
type CurrentAPIResponse struct {
	Location struct {
		Name      string  `json:"name"`
		City      string  `json:"city"`
		State     string  `json:"state"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	Timestamp time.Time `json:"timestamp"`
	AQI       struct {
		Value    int    `json:"value"`
		Category string `json:"category"`
		Color    string `json:"color"`
		Dominant string `json:"dominant_pollutant"`
	} `json:"aqi"`
	Pollutants map[string]struct {
		Concentration float64 `json:"concentration"`
		Unit          string  `json:"unit"`
		SubIndex      int     `json:"sub_index"`
	} `json:"pollutants"`
	Weather struct {
		Temperature   float64 `json:"temperature"`
		Humidity      float64 `json:"humidity"`
		WindSpeed     float64 `json:"wind_speed"`
		WindDirection float64 `json:"wind_direction"`
		Pressure      float64 `json:"pressure"`
	} `json:"weather"`
	SourceAttribution struct {
		Vehicular  float64 `json:"vehicular"`
		Industrial float64 `json:"industrial"`
		Biomass    float64 `json:"biomass"`
		Background float64 `json:"background"`
	} `json:"source_attribution"`
	Confidence struct {
		Lower float64 `json:"lower"`
		Upper float64 `json:"upper"`
		Level float64 `json:"level"`
	} `json:"confidence"`
}

// ForecastAPIResponse mirrors the 24h forecast and history endpoints
type ForecastAPIResponse struct {
	Location string             `json:"location"`
	Rows     []ForecastEntryDTO `json:"forecast"`
}

// ForecastEntryDTO is one hourly entry of a forecast or history response
type ForecastEntryDTO struct {
	Timestamp time.Time          `json:"timestamp"`
	AQI       int                `json:"aqi"`
	Category  string             `json:"category"`
	Dominant  string             `json:"dominant_pollutant"`
	Values    map[string]float64 `json:"values"`
}

// AlertsAPIResponse mirrors GET /api/v1/alerts
type AlertsAPIResponse struct {
	Alerts []types.Alert `json:"alerts"`
}

// ToCurrentAQI maps the wire response to the domain model
func (r *CurrentAPIResponse) ToCurrentAQI() *types.CurrentAQI {
	pollutants := make(map[types.Pollutant]types.PollutantReading, len(r.Pollutants))
	for code, p := range r.Pollutants {
		pollutants[types.Pollutant(code)] = types.PollutantReading{
			Concentration: p.Concentration,
			Unit:          p.Unit,
			SubIndex:      p.SubIndex,
		}
	}

	category, color := displayAttributes(r.AQI.Value, r.AQI.Category, r.AQI.Color)

	return &types.CurrentAQI{
		Location: types.Location{
			Name:        r.Location.Name,
			City:        r.Location.City,
			State:       r.Location.State,
			Country:     r.Location.Country,
			Coordinates: types.NewCoords(r.Location.Latitude, r.Location.Longitude),
		},
		Timestamp:  r.Timestamp,
		AQI:        r.AQI.Value,
		Category:   category,
		Color:      color,
		Dominant:   types.Pollutant(r.AQI.Dominant),
		Pollutants: pollutants,
		Weather: types.WeatherSnapshot{
			TemperatureC:  r.Weather.Temperature,
			Humidity:      r.Weather.Humidity,
			WindSpeed:     r.Weather.WindSpeed,
			WindDirection: r.Weather.WindDirection,
			Pressure:      r.Weather.Pressure,
		},
		Attribution: types.SourceAttribution{
			Vehicular:  r.SourceAttribution.Vehicular,
			Industrial: r.SourceAttribution.Industrial,
			Biomass:    r.SourceAttribution.Biomass,
			Background: r.SourceAttribution.Background,
		},
		Confidence: types.ConfidenceInterval{
			Lower: r.Confidence.Lower,
			Upper: r.Confidence.Upper,
			Level: r.Confidence.Level,
		},
	}
}

// ToRows maps the wire forecast entries to domain rows
func (r *ForecastAPIResponse) ToRows() []types.ForecastRow {
	rows := make([]types.ForecastRow, 0, len(r.Rows))
	for _, e := range r.Rows {
		values := make(map[types.Pollutant]float64, len(e.Values))
		for code, v := range e.Values {
			values[types.Pollutant(code)] = v
		}
		category, _ := displayAttributes(e.AQI, e.Category, "")
		rows = append(rows, types.ForecastRow{
			Timestamp: e.Timestamp,
			AQI:       e.AQI,
			Category:  category,
			Dominant:  types.Pollutant(e.Dominant),
			Values:    values,
		})
	}
	return rows
}

// displayAttributes fills in category and color from the AQI value when the
// backend omits them. Values the mapping rejects pass through untouched.
func displayAttributes(value int, category, color string) (string, string) {
	if category != "" && color != "" {
		return category, color
	}
	c, err := aqi.CategoryForValue(value)
	if err != nil {
		return category, color
	}
	if category == "" {
		category = c.Label()
	}
	if color == "" {
		color = c.Color()
	}
	return category, color
}
