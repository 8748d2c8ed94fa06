package dashboard

import (
	"context"
	"time"

	"airdash/internal/types"
)

// ForecastProvider is the prediction backend
type ForecastProvider interface {
	GetCurrent(ctx context.Context, location string) (*types.CurrentAQI, error)
	GetForecast24h(ctx context.Context, location string) ([]types.ForecastRow, error)
	GetHistory(ctx context.Context, location string, days int) ([]types.ForecastRow, error)
	Ping(ctx context.Context) error
}

// RealtimeFeed is the WebSocket client, as far as this service needs it
type RealtimeFeed interface {
	Connected() bool
	Refresh() error
}

// Snapshots is the last-known-good store used for stale fallback
type Snapshots interface {
	PutCurrent(ctx context.Context, location string, current *types.CurrentAQI) error
	GetCurrent(ctx context.Context, location string) (*types.CurrentAQI, time.Time, error)
	PutRows(ctx context.Context, location, resource string, rows []types.ForecastRow) error
	GetRows(ctx context.Context, location, resource string) ([]types.ForecastRow, time.Time, error)
}
