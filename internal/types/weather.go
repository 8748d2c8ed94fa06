package types

// WeatherSnapshot holds the meteorological conditions accompanying an AQI
// observation
type WeatherSnapshot struct {
	TemperatureC  float64 `json:"temperature_c"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	Pressure      float64 `json:"pressure"`
}
