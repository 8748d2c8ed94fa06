package dashboard

import (
	"time"

	"airdash/internal/types"
)

// CurrentResult wraps a current-AQI snapshot with its freshness
type CurrentResult struct {
	Current *types.CurrentAQI `json:"current"`
	Stale   bool              `json:"stale"`
	AsOf    time.Time         `json:"as_of"`
}

// RowsResult wraps forecast or history rows with their freshness
type RowsResult struct {
	Location string              `json:"location"`
	Rows     []types.ForecastRow `json:"rows"`
	Stale    bool                `json:"stale"`
	AsOf     time.Time           `json:"as_of"`
}

// Overview aggregates everything the dashboard landing view renders
type Overview struct {
	Location  types.Location `json:"location"`
	Timezone  string         `json:"timezone"`
	LocalTime time.Time      `json:"local_time"`
	Current   CurrentResult  `json:"current"`
	Forecast  RowsResult     `json:"forecast"`
}

// Status describes connectivity as shown in the dashboard header
type Status struct {
	Online            bool `json:"online"`
	RealtimeConnected bool `json:"realtime_connected"`
}
