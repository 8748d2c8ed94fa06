package types

import "time"

// Alert conditions
const (
	ConditionAbove = "above"
	ConditionBelow = "below"
)

// Alert is a user-configured threshold notification rule
type Alert struct {
	ID        string    `json:"id,omitempty"`
	Location  string    `json:"location"`
	Pollutant string    `json:"pollutant"` // pollutant code or "aqi" for the composite index
	Threshold float64   `json:"threshold"`
	Condition string    `json:"condition"` // "above" or "below"
	Enabled   bool      `json:"enabled"`
	Channels  []string  `json:"channels"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
