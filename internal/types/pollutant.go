package types

// Pollutant is a pollutant code as used by the prediction backend
type Pollutant string

const (
	PollutantPM25 Pollutant = "pm25"
	PollutantPM10 Pollutant = "pm10"
	PollutantO3   Pollutant = "o3"
	PollutantNO2  Pollutant = "no2"
	PollutantSO2  Pollutant = "so2"
	PollutantCO   Pollutant = "co"
)

// Pollutants lists all pollutant codes in display order
var Pollutants = []Pollutant{
	PollutantPM25,
	PollutantPM10,
	PollutantO3,
	PollutantNO2,
	PollutantSO2,
	PollutantCO,
}

// IsValidPollutant reports whether code names a known pollutant
func IsValidPollutant(code Pollutant) bool {
	for _, p := range Pollutants {
		if p == code {
			return true
		}
	}
	return false
}

// PollutantReading is a single pollutant measurement with its AQI sub-index
type PollutantReading struct {
	Concentration float64 `json:"concentration"`
	Unit          string  `json:"unit"`
	SubIndex      int     `json:"sub_index"`
}
